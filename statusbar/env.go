package statusbar

import "os"

// EnvIdentity describes the execution backend the process is attached to.
type EnvIdentity struct {
	// Remote is true when the terminal session reaches the host over a
	// network transport.
	Remote bool

	// Label names the backend kind ("ssh") when Remote is true.
	Label string
}

// sshEnvVars mark an SSH session. Any one of them being set is sufficient.
var sshEnvVars = []string{"SSH_CONNECTION", "SSH_CLIENT", "SSH_TTY"}

// DetectEnv inspects the process environment once and reports the backend
// identity. Callers cache the result; the identity is fixed for the process
// lifetime even if the environment later changes.
func DetectEnv() EnvIdentity {
	return detectEnv(os.Getenv)
}

// detectEnv is the testable core of DetectEnv.
func detectEnv(getenv func(string) string) EnvIdentity {
	for _, v := range sshEnvVars {
		if getenv(v) != "" {
			return EnvIdentity{Remote: true, Label: "ssh"}
		}
	}
	return EnvIdentity{}
}

// statPath issues the file-metadata probe backing Host.StatPath.
func statPath(path string) error {
	_, err := os.Stat(path)
	return err
}
