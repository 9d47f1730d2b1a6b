package yaml_test

import (
	"testing"

	"github.com/kodflow/myconet-bus/internal/infrastructure/persistence/config/yaml"
)

// BenchmarkTopologyParse measures allocation overhead of YAML to domain
// conversion across the whole loading pipeline, including flag and
// event_mask resolution in NodeDTO.ToDomain.
func BenchmarkTopologyParse(b *testing.B) {
	yamlContent := []byte(`
version: "1"
logging:
  base_dir: /var/log/myconet
  defaults:
    timestamp_format: iso8601
    rotation:
      max_size: 100MB
      max_files: 10
nodes:
  - name: sensor.temp
    payload_size: 16
    flags: ["cached"]
  - name: sensor.humidity
    payload_size: 16
    flags: ["cached"]
  - name: controller
    payload_size: 32
    notify_size: 4
    event_mask: ["publish", "notify"]
    subscriptions: ["sensor.temp", "sensor.humidity"]
  - name: logger
    payload_size: 64
    flags: ["latched"]
    subscriptions: ["controller"]
`)

	loader := yaml.New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := loader.Parse(yamlContent); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNodeDTO_ToDomain measures allocation overhead of converting a
// single node entry with flags and an event mask.
func BenchmarkNodeDTO_ToDomain(b *testing.B) {
	dto := yaml.NodeDTO{
		Name:          "controller",
		PayloadSize:   32,
		NotifySize:    4,
		Flags:         []string{"cached", "latched"},
		EventMask:     []string{"publish", "publish_signal", "notify"},
		Subscriptions: []string{"sensor.temp", "sensor.humidity"},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dto.ToDomain(); err != nil {
			b.Fatal(err)
		}
	}
}
