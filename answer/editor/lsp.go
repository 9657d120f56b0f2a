// Package editor serves parse and validation findings for answer-class
// snippets over the Language Server Protocol. Editors get one diagnostic
// per finding on every open, change and save; the structured model itself
// stays on the editor side.
package editor

import (
	"strings"

	"github.com/dhamidi/anskit/answer"
	"github.com/dhamidi/anskit/answer/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "anskit"

type LSPServer struct {
	docs    *Documents
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		docs:    NewDocuments(),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.update(ctx, params.TextDocument.URI, textChange.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.docs.Delete(params.TextDocument.URI)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *LSPServer) update(ctx *glsp.Context, uri, text string) {
	ls.docs.Set(uri, text)
	diagnostics := Diagnose(text)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnose turns parse and validation findings for one document into LSP
// diagnostics. A parse failure is a single error; validator findings are
// warnings, anchored to the offending field's declaration line when one is
// mentioned in the finding.
func Diagnose(text string) []protocol.Diagnostic {
	def, err := parser.Parse(text)
	if err != nil {
		return []protocol.Diagnostic{makeDiagnostic(err.Error(), protocol.DiagnosticSeverityError, firstLineRange(text))}
	}

	var diagnostics []protocol.Diagnostic
	for _, finding := range answer.Validate(def) {
		r := firstLineRange(text)
		if name, ok := mentionedField(finding, def); ok {
			if fr, found := fieldLineRange(text, name); found {
				r = fr
			}
		}
		diagnostics = append(diagnostics, makeDiagnostic(finding, protocol.DiagnosticSeverityWarning, r))
	}
	return diagnostics
}

// mentionedField reports which declared field a finding names, if any.
func mentionedField(finding string, def *answer.ClassDefinition) (string, bool) {
	for i := range def.Fields {
		name := def.Fields[i].Name
		if name != "" && strings.Contains(finding, " "+name) {
			return name, true
		}
	}
	return "", false
}

func fieldLineRange(text, name string) (protocol.Range, bool) {
	for i, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, name) {
			rest := strings.TrimSpace(t[len(name):])
			if strings.HasPrefix(rest, ":") {
				return lineRange(i, len(line)), true
			}
		}
	}
	return protocol.Range{}, false
}

func firstLineRange(text string) protocol.Range {
	end := strings.IndexByte(text, '\n')
	if end < 0 {
		end = len(text)
	}
	return lineRange(0, end)
}

func lineRange(line, length int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(length)},
	}
}

func makeDiagnostic(message string, severity protocol.DiagnosticSeverity, r protocol.Range) protocol.Diagnostic {
	source := lsName
	return protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
