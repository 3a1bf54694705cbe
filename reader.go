package tabgo

// ReaderConfig carries the explicit configuration a file reader needs to
// resolve named resources. It replaces process-global search state: the
// caller decides where data lives.
type ReaderConfig struct {
	// SearchPaths are the directories consulted, in order, when a name is
	// not an absolute path.
	SearchPaths []string
}

// Reader produces a fully formed table from a named resource. File
// formats and parsing live behind this boundary; implementations are out
// of scope for this package.
type Reader interface {
	Read(name string, cfg ReaderConfig) (*Table, error)
}
