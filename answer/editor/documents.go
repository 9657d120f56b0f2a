package editor

import "sync"

// Documents tracks the text of open editor documents by URI. The LSP
// framework may dispatch notifications from more than one goroutine, so
// access is serialized.
type Documents struct {
	mu   sync.Mutex
	docs map[string]string
}

func NewDocuments() *Documents {
	return &Documents{docs: make(map[string]string)}
}

func (d *Documents) Set(uri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = text
}

func (d *Documents) Get(uri string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, ok := d.docs[uri]
	return text, ok
}

func (d *Documents) Delete(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}
