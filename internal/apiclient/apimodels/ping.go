package apimodels

type PingResponse struct {
	Ping    string `json:"ping" yaml:"ping"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Imgapi  bool   `json:"imgapi,omitempty" yaml:"imgapi,omitempty"`
}
