// Command luaproc expands C-style macros in a Lua-like source file and
// writes the result to out.lua.
package main

import "github.com/piravelha/luaproc/internal/cli"

func main() {
	cli.Execute()
}
