package capability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"signalrest/domain/types"
	"signalrest/internal/capability"
)

func TestMinVersion_EveryOperationHasAnEntry(t *testing.T) {
	ops := []capability.Operation{
		capability.OpSendMessage, capability.OpReceive,
		capability.OpSendReaction, capability.OpRemoveReaction,
		capability.OpSendReceipt, capability.OpSendTyping, capability.OpStopTyping,
		capability.OpCreateGroup, capability.OpListGroups, capability.OpGetGroup,
		capability.OpUpdateGroup, capability.OpDeleteGroup,
		capability.OpAddMembers, capability.OpRemoveMembers,
		capability.OpAddAdmins, capability.OpRemoveAdmins,
		capability.OpBlockGroup, capability.OpJoinGroup, capability.OpQuitGroup,
		capability.OpListIdentities, capability.OpTrustIdentity,
		capability.OpListContacts, capability.OpUpdateContact,
		capability.OpSyncContacts, capability.OpSearch,
		capability.OpListAttachments, capability.OpGetAttachment,
		capability.OpDeleteAttachment,
		capability.OpUpdateProfile, capability.OpAbout,
	}
	for _, op := range ops {
		min, ok := capability.MinVersion(op)
		require.True(t, ok, op)
		require.GreaterOrEqual(t, min, types.V1, op)
	}
}

func TestRequires_FeaturesRaiseTheMinimum(t *testing.T) {
	min, ok := capability.Requires(capability.OpSendMessage)
	require.True(t, ok)
	require.Equal(t, types.V1, min)

	for _, f := range []capability.Feature{
		capability.FeatureMultiAttachment,
		capability.FeatureMentions,
		capability.FeatureQuotes,
	} {
		need, ok := capability.Requires(capability.OpSendMessage, f)
		require.True(t, ok, f)
		require.Equal(t, types.V2, need, f)
	}
}

func TestRequires_UnknownOperationOrFeature(t *testing.T) {
	_, ok := capability.Requires(capability.Operation("delete_account"))
	require.False(t, ok)

	// A feature the operation never carries is unsatisfiable at any version.
	_, ok = capability.Requires(capability.OpReceive, capability.FeatureMentions)
	require.False(t, ok)
}

func TestResolve_PicksLowestSufficientVersion(t *testing.T) {
	v, err := capability.Resolve(capability.OpSendMessage, []types.APIVersion{types.V1, types.V2})
	require.NoError(t, err)
	require.Equal(t, types.V1, v)

	v, err = capability.Resolve(
		capability.OpSendMessage,
		[]types.APIVersion{types.V1, types.V2},
		capability.FeatureQuotes,
	)
	require.NoError(t, err)
	require.Equal(t, types.V2, v)
}

func TestResolve_NeverSilentlyDegrades(t *testing.T) {
	_, err := capability.Resolve(
		capability.OpSendMessage,
		[]types.APIVersion{types.V1},
		capability.FeatureMultiAttachment,
	)
	var unsupported *types.UnsupportedVersionError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "send_message", unsupported.Op)
	require.Equal(t, types.V2, unsupported.Need)
	require.Equal(t, []types.APIVersion{types.V1}, unsupported.Supported)
}

func TestSupports(t *testing.T) {
	require.True(t, capability.Supports(types.V1, capability.OpSendMessage))
	require.True(t, capability.Supports(types.V2, capability.OpSendMessage,
		capability.FeatureMentions))
	require.False(t, capability.Supports(types.V1, capability.OpSendMessage,
		capability.FeatureMentions))
}
