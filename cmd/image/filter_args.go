package image

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"imgapi-client/cmd/util"
	"imgapi-client/internal/apiclient"
	"imgapi-client/internal/apiclient/apimodels"
)

// BuildImageFilter turns key=value arguments into an ImageFilter. Tokens
// without a "=" are skipped.
func BuildImageFilter(args []string) (*apiclient.ImageFilter, error) {
	filter := &apiclient.ImageFilter{}

	for _, arg := range args {
		k, v, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		switch k {
		case "account":
			account, err := uuid.Parse(v)
			if err != nil {
				return nil, errors.New("account must be a valid UUID")
			}
			filter.Account = &account
		case "channel":
			channel := v
			filter.Channel = &channel
		case "inclAdminFields":
			incl, ok := parseStrictBool(v)
			if !ok {
				return nil, errors.New("inclAdminFields must be either true or false")
			}
			filter.IncludeAdminFields = util.GetBoolPointer(incl)
		case "owner":
			owner, err := uuid.Parse(v)
			if err != nil {
				return nil, errors.New("owner must be a valid UUID")
			}
			filter.Owner = &owner
		case "name":
			name := v
			filter.Name = &name
		case "version":
			version := v
			filter.Version = &version
		case "public":
			public, ok := parseStrictBool(v)
			if !ok {
				return nil, errors.New("public must be either true or false")
			}
			filter.Public = util.GetBoolPointer(public)
		case "os":
			os, err := apimodels.ParseOperatingSystem(v)
			if err != nil {
				return nil, err
			}
			filter.OS = &os
		case "type":
			imageType := v
			filter.Type = &imageType
		case "tag":
			return nil, errors.New("tag filtering is not yet implemented")
		case "billing_tag":
			filter.BillingTag = append(filter.BillingTag, v)
		case "limit":
			limit, err := strconv.ParseUint(v, 10, 31)
			if err != nil {
				return nil, errors.New("limit must be an integer")
			}
			limit32 := int32(limit)
			filter.Limit = &limit32
		case "marker":
			return nil, errors.New("marker pagination is not yet implemented")
		default:
			return nil, errors.Errorf("unexpected query filter: %s", arg)
		}
	}

	return filter, nil
}

// parseStrictBool accepts exactly "true" or "false".
func parseStrictBool(v string) (bool, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
