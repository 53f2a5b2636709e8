package dockergroup

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipIfUnsupported(t *testing.T) {
	t.Helper()
	if _, err := Membership("root"); errors.Is(err, ErrUnsupported) {
		t.Skip("group enumeration not supported on this platform")
	}
}

func TestMembershipNonexistentGroup(t *testing.T) {
	skipIfUnsupported(t)

	member, err := Membership("simctl-test-no-such-group")
	require.NoError(t, err)
	assert.False(t, member)
}

func TestMembershipOwnPrimaryGroup(t *testing.T) {
	skipIfUnsupported(t)

	current, err := user.Current()
	require.NoError(t, err)
	primary, err := user.LookupGroupId(current.Gid)
	if err != nil {
		t.Skipf("cannot resolve primary group: %v", err)
	}

	member, err := Membership(primary.Name)
	require.NoError(t, err)
	assert.True(t, member, "the current user is always in its primary group")
}

func TestCheckReportsNotMemberWithRemediation(t *testing.T) {
	skipIfUnsupported(t)

	err := Check("simctl-test-no-such-group")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotMember))
	assert.Contains(t, err.Error(), "fix-up")
}
