// Package optmatch is a small command-line argument parser built around an
// ordered table of regular-expression patterns. Each table entry pairs a
// pattern with a help string and a handler; every argument token is tested
// against the table in registration order and the first full match wins,
// invoking the handler with the token's capture groups. A usage listing is
// generated automatically from the table and printed when --help is given or
// when any token matches nothing.
//
// # Example
//
// The typed helpers cover the common flag shapes, writing straight into
// caller-owned variables:
//
//	cfg := struct {
//		Server        string
//		Reverse       bool
//		Width, Height int
//	}{Server: "localhost:10000", Width: 1280, Height: 1024}
//
//	ok := optmatch.ParseCmdLine(optmatch.Table{
//		optmatch.StringOpt("server", "address of server to connect to", &cfg.Server),
//		optmatch.BoolOpt("reverseFluxPolarity", "operate with flux polarity reversed", &cfg.Reverse),
//		optmatch.DimensionsOpt("screen", "screen width and height in pixels", &cfg.Width, &cfg.Height),
//	})
//	if !ok {
//		os.Exit(2)
//	}
//
// Flag syntaxes the helpers do not cover take a hand-written pattern:
//
//	optmatch.NewOpt(`--logLevel=(debug|info|warn|error)`, "set the logging level",
//		func(groups []string) { cfg.LogLevel = groups[1] })
//
// Handlers receive the full submatch slice as returned by the regexp package:
// groups[0] is the whole token and groups[1:] are the capture groups, so the
// indexing matches the pattern as written.
package optmatch
