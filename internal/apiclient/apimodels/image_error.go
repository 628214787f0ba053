package apimodels

// Error codes the service reports when asynchronous image creation fails.
const (
	ErrorCodePrepareImageDidNotRun = "PrepareImageDidNotRun"
	ErrorCodeVmHasNoOrigin         = "VmHasNoOrigin"
	ErrorCodeNotSupported          = "NotSupported"
)

// ImageError details the failure of an asynchronous image action. The stack
// is server-side debugging detail, not a stable contract.
type ImageError struct {
	Message string `json:"message" yaml:"message"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
	Stack   string `json:"stack,omitempty" yaml:"stack,omitempty"`
}

func (e *ImageError) String() string {
	return e.Message
}
