// Package dockergroup verifies that the current user may talk to the
// container runtime without privilege escalation.
package dockergroup

import (
	"errors"
	"fmt"
	"os/user"
	"runtime"
)

// ErrUnsupported reports that the host platform cannot enumerate group
// memberships. Callers treat it as "nothing to verify", not as a failure.
var ErrUnsupported = errors.New("group enumeration not supported on this platform")

// ErrNotMember reports that the current user is not in the required group.
var ErrNotMember = errors.New("user not in required group")

// Membership reports whether the current user belongs to the named system
// group. It returns ErrUnsupported on platforms without a group database.
func Membership(group string) (bool, error) {
	if runtime.GOOS == "windows" {
		return false, ErrUnsupported
	}
	current, err := user.Current()
	if err != nil {
		return false, fmt.Errorf("resolving current user: %w", err)
	}
	ids, err := current.GroupIds()
	if err != nil {
		return false, fmt.Errorf("listing groups for %s: %w", current.Username, err)
	}
	for _, gid := range ids {
		g, err := user.LookupGroupId(gid)
		if err != nil {
			// Stale gid without a group entry; keep scanning the rest.
			continue
		}
		if g.Name == group {
			return true, nil
		}
	}
	return false, nil
}

// Check fails with remediation advice when the current user is not a member
// of group. The returned error matches ErrNotMember via errors.Is.
func Check(group string) error {
	member, err := Membership(group)
	if err != nil {
		return err
	}
	if !member {
		return fmt.Errorf("%w: the current user is not in the %q group; add it to /etc/group or run 'simctl fix-up'", ErrNotMember, group)
	}
	return nil
}
