package ir

import (
	"bytes"
	"encoding/gob"
)

// Serialize and Deserialize give the test suite (and cmd/fuzzilgen
// -emit-gob) a concrete, checkable round-trip format for Program, so that
// (R1) "deserialize(serialize(p)) == p" is testable within this repo,
// even though wire persistence is otherwise left to the downstream
// lifter to define.
func Serialize(p Program) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize is the inverse of Serialize.
func Deserialize(data []byte) (Program, error) {
	var p Program
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return Program{}, err
	}
	return p, nil
}
