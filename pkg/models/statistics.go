package models

import "github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"

type RegistryStatistics struct {
	TotalDeviceCount    int64
	EnabledDeviceCount  int64
	DisabledDeviceCount int64
}

// Consistent reports whether the enabled and disabled counts add up to the total.
// The registry computes the figures independently, so a mismatch is not an error.
func (s RegistryStatistics) Consistent() bool {
	return s.EnabledDeviceCount+s.DisabledDeviceCount == s.TotalDeviceCount
}

func (s RegistryStatistics) ToParser() *serializer.RegistryStatisticsParser {
	return &serializer.RegistryStatisticsParser{
		TotalDeviceCount:    s.TotalDeviceCount,
		EnabledDeviceCount:  s.EnabledDeviceCount,
		DisabledDeviceCount: s.DisabledDeviceCount,
	}
}

func RegistryStatisticsFromParser(parser *serializer.RegistryStatisticsParser) *RegistryStatistics {
	if parser == nil {
		return &RegistryStatistics{}
	}

	return &RegistryStatistics{
		TotalDeviceCount:    parser.TotalDeviceCount,
		EnabledDeviceCount:  parser.EnabledDeviceCount,
		DisabledDeviceCount: parser.DisabledDeviceCount,
	}
}

func (s RegistryStatistics) MarshalJSON() ([]byte, error) {
	return s.ToParser().ToJSON()
}

func (s *RegistryStatistics) UnmarshalJSON(data []byte) error {
	parser, err := serializer.NewRegistryStatisticsParserFromJSON(data)
	if err != nil {
		return err
	}

	*s = *RegistryStatisticsFromParser(parser)
	return nil
}
