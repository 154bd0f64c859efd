package lsp

import (
	"context"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"lust/internal/driver"
	"lust/internal/version"
)

const serverName = "lust"

// Options configures the language server.
type Options struct {
	MaxDiagnostics int
	// Debug включает внутренние логи glsp.
	Debug bool
}

type document struct {
	uri     protocol.DocumentUri
	version protocol.Integer
	text    string
	result  *driver.ParseResult
}

// Server держит открытые документы и перепарсивает их целиком на каждое изменение.
type Server struct {
	mu      sync.Mutex
	docs    map[protocol.DocumentUri]*document
	opts    Options
	log     commonlog.Logger
	handler protocol.Handler
}

func NewServer(opts Options) *Server {
	s := &Server{
		docs: make(map[protocol.DocumentUri]*document),
		opts: opts,
		log:  commonlog.GetLogger("lust.lsp"),
	}
	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.didOpen,
		TextDocumentDidChange:      s.didChange,
		TextDocumentDidClose:       s.didClose,
		TextDocumentDocumentSymbol: s.documentSymbol,
		TextDocumentFoldingRange:   s.foldingRange,
	}
	return s
}

// Handler exposes the protocol handler for embedding into another transport.
func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

// RunStdio serves LSP over stdin/stdout until the client disconnects.
func (s *Server) RunStdio() error {
	srv := glspserver.NewServer(&s.handler, serverName, s.opts.Debug)
	s.log.Info("starting language server")
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, _ *protocol.InitializeParams) (any, error) {
	caps := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	openClose := true
	caps.TextDocumentSync = protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &syncKind,
	}
	ver := version.Semver
	return protocol.InitializeResult{
		Capabilities: caps,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &ver,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	s.log.Debug("client initialized")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	s.mu.Lock()
	clear(s.docs)
	s.mu.Unlock()
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	s.log.Debugf("open %s (v%d)", item.URI, item.Version)
	doc := &document{uri: item.URI, version: item.Version, text: item.Text}
	s.analyze(doc)

	s.mu.Lock()
	s.docs[item.URI] = doc
	s.mu.Unlock()

	s.publish(ctx, doc)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	prev, ok := s.docs[uri]
	s.mu.Unlock()
	if !ok {
		// изменение без open: начинаем с пустого текста
		prev = &document{uri: uri}
	}

	doc := &document{
		uri:     uri,
		version: params.TextDocument.Version,
		text:    applyChanges(prev.text, params.ContentChanges),
	}
	s.analyze(doc)

	s.mu.Lock()
	if cur, ok := s.docs[uri]; ok && cur.version > doc.version {
		// устаревшее изменение
		s.mu.Unlock()
		return nil
	}
	s.docs[uri] = doc
	s.mu.Unlock()

	s.publish(ctx, doc)
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
	notify(ctx, protocol.PublishDiagnosticsParams{URI: uri, Diagnostics: []protocol.Diagnostic{}})
	return nil
}

func (s *Server) documentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.document(params.TextDocument.URI)
	if doc == nil || doc.result == nil {
		return []protocol.DocumentSymbol{}, nil
	}
	return documentSymbols(doc.result.Program, doc.result.File), nil
}

func (s *Server) foldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.document(params.TextDocument.URI)
	if doc == nil || doc.result == nil {
		return []protocol.FoldingRange{}, nil
	}
	return buildFoldingRanges(doc.result.File), nil
}

func (s *Server) document(uri protocol.DocumentUri) *document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[uri]
}

// analyze разбирает текст документа. Ошибка возможна только при отмене контекста,
// а здесь он фоновый, поэтому результат есть всегда.
func (s *Server) analyze(doc *document) {
	res, err := driver.ParseSource(context.Background(), displayName(doc.uri), []byte(doc.text),
		driver.Options{MaxDiagnostics: s.opts.MaxDiagnostics})
	if err != nil {
		s.log.Errorf("parse %s: %s", doc.uri, err)
	}
	doc.result = res
}

func (s *Server) publish(ctx *glsp.Context, doc *document) {
	if doc.result == nil {
		return
	}
	v := protocol.UInteger(max(doc.version, 0))
	notify(ctx, protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Version:     &v,
		Diagnostics: convertDiagnostics(doc.result.Bag, doc.result.FileSet, doc.uri),
	})
}

func notify(ctx *glsp.Context, params protocol.PublishDiagnosticsParams) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}
