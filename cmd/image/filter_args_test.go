package image

import (
	"testing"

	"imgapi-client/internal/apiclient/apimodels"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildImageFilterEmpty(t *testing.T) {
	filter, err := BuildImageFilter(nil)
	require.NoError(t, err)
	assert.Equal(t, "", filter.QueryString())
}

func TestBuildImageFilterAllKeys(t *testing.T) {
	filter, err := BuildImageFilter([]string{
		"account=9dce1460-0c4c-4417-ab8b-25ca478c5a78",
		"channel=release",
		"inclAdminFields=true",
		"owner=86055c40-2547-11e2-8a6b-4bb37edc84ba",
		"name=~base",
		"version=14.4.0",
		"public=false",
		"os=smartos",
		"type=!zvol",
		"billing_tag=xxl",
		"billing_tag=promo",
		"limit=50",
	})
	require.NoError(t, err)

	require.NotNil(t, filter.Account)
	assert.Equal(t, uuid.MustParse("9dce1460-0c4c-4417-ab8b-25ca478c5a78"), *filter.Account)
	require.NotNil(t, filter.Channel)
	assert.Equal(t, "release", *filter.Channel)
	require.NotNil(t, filter.IncludeAdminFields)
	assert.True(t, *filter.IncludeAdminFields)
	require.NotNil(t, filter.Owner)
	assert.Equal(t, uuid.MustParse("86055c40-2547-11e2-8a6b-4bb37edc84ba"), *filter.Owner)
	require.NotNil(t, filter.Name)
	assert.Equal(t, "~base", *filter.Name)
	require.NotNil(t, filter.Version)
	assert.Equal(t, "14.4.0", *filter.Version)
	require.NotNil(t, filter.Public)
	assert.False(t, *filter.Public)
	require.NotNil(t, filter.OS)
	assert.Equal(t, apimodels.OsSmartOS, *filter.OS)
	require.NotNil(t, filter.Type)
	assert.Equal(t, "!zvol", *filter.Type)
	assert.Equal(t, []string{"xxl", "promo"}, filter.BillingTag)
	require.NotNil(t, filter.Limit)
	assert.Equal(t, int32(50), *filter.Limit)
}

func TestBuildImageFilterSkipsTokensWithoutEquals(t *testing.T) {
	filter, err := BuildImageFilter([]string{"garbage", "name=base-64-lts", "anothertoken"})
	require.NoError(t, err)
	require.NotNil(t, filter.Name)
	assert.Equal(t, "base-64-lts", *filter.Name)
	assert.Nil(t, filter.Version)
}

func TestBuildImageFilterValueMayContainEquals(t *testing.T) {
	filter, err := BuildImageFilter([]string{"name=a=b"})
	require.NoError(t, err)
	require.NotNil(t, filter.Name)
	assert.Equal(t, "a=b", *filter.Name)
}

func TestBuildImageFilterOperatingSystemCaseInsensitive(t *testing.T) {
	filter, err := BuildImageFilter([]string{"os=Linux"})
	require.NoError(t, err)
	require.NotNil(t, filter.OS)
	assert.Equal(t, apimodels.OsLinux, *filter.OS)
	assert.Equal(t, "os=linux", filter.QueryString())
}

func TestBuildImageFilterErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"bad account", []string{"account=joe"}, "account must be a valid UUID"},
		{"bad owner", []string{"owner=joe"}, "owner must be a valid UUID"},
		{"bad admin flag", []string{"inclAdminFields=yes"}, "inclAdminFields must be either true or false"},
		{"bad public flag", []string{"public=maybe"}, "public must be either true or false"},
		{"numeric bool rejected", []string{"public=1"}, "public must be either true or false"},
		{"cased bool rejected", []string{"inclAdminFields=True"}, "inclAdminFields must be either true or false"},
		{"bad os", []string{"os=plan9"}, "os must be one of: smartos, linux, windows, bsd, illumos, other"},
		{"bad limit", []string{"limit=many"}, "limit must be an integer"},
		{"negative limit", []string{"limit=-1"}, "limit must be an integer"},
		{"tag unimplemented", []string{"tag=role=db"}, "tag filtering is not yet implemented"},
		{"marker unimplemented", []string{"marker=02dbab66-a70a-11e4-819b-b3dc41b361d6"}, "marker pagination is not yet implemented"},
		{"unknown key", []string{"color=blue"}, "unexpected query filter: color=blue"},
		{"state not a filter key", []string{"state=active"}, "unexpected query filter: state=active"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := BuildImageFilter(tc.args)
			require.Error(t, err)
			assert.Nil(t, filter)
			assert.EqualError(t, err, tc.expected)
		})
	}
}
