package compose

// UpOptions control the argument vector built for `up`.
type UpOptions struct {
	Scales        []string // "service=replicas" pairs, forwarded in input order
	ForceRecreate bool
	Services      []string
}

// UpArgs builds the orchestrator arguments for `up`. Containers are always
// started detached and rebuilt; requested services are appended last in
// input order.
func UpArgs(opts UpOptions) []string {
	args := []string{"up", "-d", "--build"}
	for _, scale := range opts.Scales {
		args = append(args, "--scale", scale)
	}
	if opts.ForceRecreate {
		args = append(args, "--force-recreate")
	}
	return append(args, opts.Services...)
}

// DownArgs builds the orchestrator arguments for `down`.
func DownArgs(removeOrphans bool) []string {
	args := []string{"down"}
	if removeOrphans {
		args = append(args, "--remove-orphans")
	}
	return args
}

// PsArgs builds the orchestrator arguments for `ps` (also backing `status`).
func PsArgs(services []string) []string {
	return append([]string{"ps"}, services...)
}

// LogsArgs builds the orchestrator arguments for `logs`. Output is always
// followed, so the invocation blocks until interrupted.
func LogsArgs(services []string) []string {
	return append([]string{"logs", "-f"}, services...)
}

// ConfigArgs builds the orchestrator arguments for `config`.
func ConfigArgs(servicesOnly bool) []string {
	if servicesOnly {
		return []string{"config", "--services"}
	}
	return []string{"config"}
}

// ContainerCommandArgs builds the arguments for `exec` and `run`: exactly one
// service followed by the command to execute inside it, passed through
// unmodified.
func ContainerCommandArgs(name, service string, command []string) []string {
	return append([]string{name, service}, command...)
}
