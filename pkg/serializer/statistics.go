package serializer

type RegistryStatisticsParser struct {
	TotalDeviceCount    int64 `json:"totalDeviceCount"`
	EnabledDeviceCount  int64 `json:"enableDeviceCount"`
	DisabledDeviceCount int64 `json:"disabledDeviceCount"`
}

func (p *RegistryStatisticsParser) ToJSON() ([]byte, error) {
	return encodeJSON(p)
}

func NewRegistryStatisticsParserFromJSON(data []byte) (*RegistryStatisticsParser, error) {
	var parser RegistryStatisticsParser
	if err := decodeJSON(data, &parser); err != nil {
		return nil, err
	}

	return &parser, nil
}
