// Package command turns declarative tool tables into MCP tools backed by
// the az executable.
//
// A Spec names a tool, its fixed az subcommand prefix and an ordered list of
// Params. One generic handler interprets every Spec: it validates the call
// arguments against the parameters, checks the PAT, applies the
// non-destructive gate, assembles argv and hands it to the azcli.Runner.
//
// Argv layout is fixed:
//
//	<command...> <required params...> [--yes] --output json <optional params...>
//
// Absent optional parameters contribute nothing. How a present parameter is
// emitted is decided by its Encoding.
package command
