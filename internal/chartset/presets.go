package chartset

import (
	"sort"

	"github.com/roach88/logchart/internal/logtable"
)

// presets maps each built-in name to a constructor so that callers always
// receive a fresh, mutable ChartSet.
var presets = map[string]func() *ChartSet{
	"battery":       batteryPreset,
	"solar":         solarPreset,
	"gyroscope":     gyroscopePreset,
	"rigid-body":    rigidBodyPreset,
	"accelerometer": accelerometerPreset,
	"wire":          wirePreset,
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the built-in chart set called name.
func Preset(name string) (*ChartSet, error) {
	build, ok := presets[name]
	if !ok {
		return nil, &UnknownPresetError{Name: name, Available: PresetNames()}
	}
	return build(), nil
}

func batteryPreset() *ChartSet {
	return &ChartSet{
		Name:        "battery",
		Description: "battery terminal voltage and state of charge over time",
		Jobs: []Job{{
			Input:     "battery_output.txt",
			Delimiter: logtable.DefaultDelimiter,
			Charts: []Chart{
				{
					Name:   "ov_battery",
					X:      "t",
					Y:      []string{"V_t"},
					Title:  "Output Voltage Of Battery",
					XLabel: "time (s)",
					YLabel: "Terminal Voltage (V)",
					Output: "OV_Battery.png",
				},
				{
					Name:   "soc_battery",
					X:      "t",
					Y:      []string{"SOC"},
					Title:  "Sate Of Charge Of Battery",
					XLabel: "time (s)",
					YLabel: "State Of Charge (SOC)",
					Output: "SOC_Battery.png",
				},
			},
		}},
	}
}

func solarPreset() *ChartSet {
	return &ChartSet{
		Name:        "solar",
		Description: "solar panel I-V curve",
		Jobs: []Job{{
			Input:     "solar_output.txt",
			Delimiter: logtable.DefaultDelimiter,
			Charts: []Chart{{
				Name:   "iv_curve",
				X:      "V",
				Y:      []string{"I"},
				Title:  "IV Curve For Solar Pannel",
				XLabel: "V",
				YLabel: "I",
				Output: "plot.png",
			}},
		}},
	}
}

func gyroscopePreset() *ChartSet {
	return &ChartSet{
		Name:        "gyroscope",
		Description: "true and measured angular velocity over time",
		Jobs: []Job{{
			Input:     "gyroscope_output.txt",
			Delimiter: logtable.DefaultDelimiter,
			Charts: []Chart{{
				Name:   "gyroscope",
				X:      "t",
				Y:      []string{"w", "w_g"},
				Labels: []string{"angular velocity", "measured angular velocity"},
				Title:  "Angular Velocity v. Time (GYROSCOPE)",
				XLabel: "time (s)",
				YLabel: "angular velocity (rad/s)",
				Output: "gyroscope(WvT).png",
			}},
		}},
	}
}

func rigidBodyPreset() *ChartSet {
	return &ChartSet{
		Name:        "rigid-body",
		Description: "reference and rotated body axes with the angular-velocity vector",
		Jobs: []Job{{
			Kind:      KindVectors,
			Rotation:  "rotation1_output.txt",
			Omega:     "omega_output.txt",
			Delimiter: logtable.DefaultDelimiter,
			Charts: []Chart{{
				Name:   "rotation",
				Title:  "Rotation About Vector Ex: 2",
				XLabel: "X",
				YLabel: "Y",
				ZLabel: "Z",
				Output: "Rotation Vec2 .png",
			}},
		}},
	}
}

func accelerometerPreset() *ChartSet {
	chart := func(name, y, yg, quantity, unit, output string) Chart {
		return Chart{
			Name:   name,
			X:      "t",
			Y:      []string{y, yg},
			Labels: []string{quantity, "measured " + quantity},
			Title:  quantity + " v. Time (ACCELEROMETER)",
			XLabel: "time (s)",
			YLabel: quantity + " (" + unit + ")",
			Output: output,
		}
	}
	return &ChartSet{
		Name:        "accelerometer",
		Description: "true and measured acceleration, velocity and position over time",
		Jobs: []Job{{
			Input:     "accelerometer_output.txt",
			Delimiter: logtable.DefaultDelimiter,
			Charts: []Chart{
				chart("accel_a", "a", "a_g", "acceleration", "m/s^2", "accelerometer(AvT).png"),
				chart("accel_v", "v", "v_g", "velocity", "m/s", "accelerometer(VvT).png"),
				chart("accel_x", "x", "x_g", "position", "m", "accelerometer(XvT).png"),
			},
		}},
	}
}

func wirePreset() *ChartSet {
	return &ChartSet{
		Name:        "wire",
		Description: "RLC wire response to a voltage step and a current step",
		Jobs: []Job{
			{
				Input:     "voltage_source_output.csv",
				Delimiter: logtable.AutoDelimiter,
				Charts: []Chart{{
					Name:   "voltage_source",
					X:      "time",
					Y:      []string{"current", "voltageC"},
					Labels: []string{"current (A)", "capacitor voltage (V)"},
					Title:  "Voltage Source Response",
					XLabel: "time (s)",
					Output: "voltage_source(IVvT).png",
				}},
			},
			{
				Input:     "current_source_output.csv",
				Delimiter: logtable.AutoDelimiter,
				Charts: []Chart{{
					Name:   "current_source",
					X:      "time",
					Y:      []string{"current", "voltage"},
					Labels: []string{"current (A)", "voltage (V)"},
					Title:  "Current Source Response",
					XLabel: "time (s)",
					Output: "current_source(IVvT).png",
				}},
			},
		},
	}
}
