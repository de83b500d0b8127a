package main

import (
	"cqlfilter/lexer"
	"cqlfilter/web"
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging  string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version  VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Tokenize struct {
		Filter string `help:"The filter expression." placeholder:"<filter>" arg:""`
	} `cmd:"" help:"Prints the tokens of the given filter expression."`
	Serve struct {
		Port    string `help:"The port of the HTTP server." default:"8080"`
		TlsCert string `help:"Certificate file for TLS. TLS is used when cert and key are given." placeholder:"<cert-file>" type:"existingfile"`
		TlsKey  string `help:"Key file for TLS." placeholder:"<key-file>" type:"existingfile"`
	} `cmd:"" help:"Starts an HTTP server tokenizing filters sent to POST /tokenize."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("cqlfilter"),
		kong.Description("A context-sensitive tokenizer for CQL filter expressions."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "tokenize <filter>":
		tokens, err := lexer.Tokenize(cli.Tokenize.Filter)
		sigolo.FatalCheck(err)

		for _, token := range tokens {
			fmt.Printf("%-16s %s\n", token.Kind().String(), token.Text())
		}
	case "serve":
		if cli.Serve.TlsCert != "" && cli.Serve.TlsKey != "" {
			web.StartServerTls(cli.Serve.Port, cli.Serve.TlsCert, cli.Serve.TlsKey)
		} else {
			web.StartServer(cli.Serve.Port)
		}
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}
