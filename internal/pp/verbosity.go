package pp

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels.
const (
	Info             Verbosity = iota // useful additional info
	Notice                            // important messages
	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)

// ID identifies a message that should be printed at most once.
type ID int

// All messages that should be printed at most once.
const (
	MessageUpdateTimeouts ID = iota
	MessageStoreFailures
	MessageCredentialsInQuery
	MessagePlainHTTP
	MessageRehashFailures
	MessageTokenPermission
	MessageLooseSecretFile
)
