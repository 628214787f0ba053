package apiclient

import (
	"net/url"
	"strconv"

	"imgapi-client/internal/apiclient/apimodels"

	"github.com/google/uuid"
)

// ImageFilter narrows a catalog listing. Every field is independently
// optional; the zero value matches everything.
type ImageFilter struct {
	// Account scopes visibility to what that account can see. Only relevant
	// for dc-mode deployments.
	Account *uuid.UUID
	// Channel picks a distribution channel, "*" for all of them. The server
	// default channel applies when unset.
	Channel *string
	// IncludeAdminFields asks the server for administrative fields such as
	// the per-file storage location.
	IncludeAdminFields *bool
	Owner              *uuid.UUID
	State              *apimodels.ImageState
	// Name matches exactly, or as a case-sensitive substring with a "~"
	// prefix. Version behaves the same way.
	Name    *string
	Version *string
	Public  *bool
	OS      *apimodels.OperatingSystem
	// Type may carry a "!" prefix to exclude that type.
	Type *string
	// Tag entries AND together; keys go on the wire as "tag.<key>".
	Tag map[string]string
	// BillingTag entries AND together and keep their order on the wire.
	BillingTag []string
	// Limit caps the result count. The server default and maximum is 1000.
	Limit *int32
}

// QueryString encodes the set fields as URL query parameters. Keys are the
// service-side names; the admin flag goes out as inclAdminFields and the
// operating system uses its short form. Encoding sorts keys, which keeps tag
// output reproducible, and repeated billing_tag values keep their order.
// No validation happens here.
func (f *ImageFilter) QueryString() string {
	values := url.Values{}

	if f.Account != nil {
		values.Add("account", f.Account.String())
	}
	if f.Channel != nil {
		values.Add("channel", *f.Channel)
	}
	if f.IncludeAdminFields != nil {
		values.Add("inclAdminFields", strconv.FormatBool(*f.IncludeAdminFields))
	}
	if f.Owner != nil {
		values.Add("owner", f.Owner.String())
	}
	if f.State != nil {
		values.Add("state", f.State.String())
	}
	if f.Name != nil {
		values.Add("name", *f.Name)
	}
	if f.Version != nil {
		values.Add("version", *f.Version)
	}
	if f.Public != nil {
		values.Add("public", strconv.FormatBool(*f.Public))
	}
	if f.OS != nil {
		values.Add("os", f.OS.QueryParam())
	}
	if f.Type != nil {
		values.Add("type", *f.Type)
	}
	for key, value := range f.Tag {
		values.Add("tag."+key, value)
	}
	for _, tag := range f.BillingTag {
		values.Add("billing_tag", tag)
	}
	if f.Limit != nil {
		values.Add("limit", strconv.FormatInt(int64(*f.Limit), 10))
	}

	return values.Encode()
}
