package schema

// PathResolver locates a file on disk given its bare name and the ambient
// variables of the invocation. Implementations search a conventional set of
// content directories and fail when the file cannot be found anywhere.
type PathResolver interface {
	Resolve(filename string, vars map[string]string) (string, error)
}
