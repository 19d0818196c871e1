package consts

// Permissions for files and directories mediafetch might create.
const (
	PermsResultDir = 0o755
	PermsLogFile   = 0o644
)
