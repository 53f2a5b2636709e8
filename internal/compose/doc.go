// Package compose drives the external compose orchestrator for one project.
//
// The package has two halves. Client assembles and runs orchestrator
// invocations: project-scoping flags first, then the subcommand's own
// argument vector, executed in the resolved project directory. The argv
// builders (UpArgs, DownArgs, ...) encode the exact forwarding rules for
// each subcommand so they can be tested without spawning processes.
//
// ServiceCatalog discovers the declared service names via
// `config --services` and caches them for 60 seconds per
// (directory, flags) key. The catalog backs shell completion, which runs in
// a fresh process per keystroke, so entries are also snapshotted to the
// user cache directory.
package compose
