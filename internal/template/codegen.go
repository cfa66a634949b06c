package template

func init() {
	register("Codegen50", func(rt *Runtime) { codegen(rt, 50) })
	register("Codegen100", func(rt *Runtime) { codegen(rt, 100) })
}

// codegen is the plainest template: Prefix then build(n), exercising
// the primary registry alone from an empty scope.
func codegen(rt *Runtime, n int) {
	rt.Bootstrap(3)
	rt.JS(n)
}
