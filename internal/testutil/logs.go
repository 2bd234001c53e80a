package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteLog writes a synthetic simulator log with the given header and rows,
// joined by delimiter, and returns its path.
//
// Values are formatted with the shortest representation that round-trips,
// so a loaded table compares equal to rows.
func WriteLog(t *testing.T, dir, name string, header []string, rows [][]float64, delimiter string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(strings.Join(header, delimiter))
	b.WriteByte('\n')
	for _, r := range rows {
		fields := make([]string, len(r))
		for i, v := range r {
			fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		b.WriteString(strings.Join(fields, delimiter))
		b.WriteByte('\n')
	}
	return WriteFile(t, dir, name, b.String())
}

// BatteryLog is a short battery discharge log in the simulator's own format,
// including the stray space before the first delimiter.
const BatteryLog = "t, V_t, SOC\n0 , 3.7, 1\n1 , 3.65, 0.95\n2 , 3.6, 0.9\n"

// GyroscopeLog is a short gyroscope trace: true and measured angular velocity.
const GyroscopeLog = "t, w, w_g\n0, 0, 0.01\n0.5, 0.2, 0.18\n1, 0.4, 0.43\n1.5, 0.5, 0.52\n"

// SolarLog is a short I-V sweep with the trailing space after the header.
const SolarLog = "V, I \n0, 5.2\n10, 5.1\n20, 4.8\n30, 3.2\n35, 0\n"

// IdentityRotation is a 3x3 identity rotation-matrix log.
const IdentityRotation = "1, 0, 0\n0, 1, 0\n0, 0, 1\n"

// OmegaLog is a single angular-velocity vector without a trailing newline,
// as the rigid-body driver writes it.
const OmegaLog = "0.9, 0.1, -0.6"

// AccelerometerLog is a short accelerometer trace: true and measured
// acceleration, velocity and position.
const AccelerometerLog = "t, a, v, x, a_g, v_g, x_g\n" +
	"0, 2.76, 0, 0, 2.7, 0, 0\n" +
	"0.01, 2.76, 0.0276, 0.000138, 2.81, 0.0281, 0.00014\n" +
	"0.02, 2.76, 0.0552, 0.000552, 2.74, 0.0555, 0.00055\n"

// VoltageSourceCSV and CurrentSourceCSV are short wire step responses in
// plain comma-separated form.
const (
	VoltageSourceCSV = "time,current,voltageC\n0,0.5,0.001\n0.001,0.9,0.004\n0.002,1.2,0.009\n"
	CurrentSourceCSV = "time,current,voltage\n0,1,20\n0.001,1,0.6\n0.002,1,0.7\n"
)

// WriteSimulatorOutputs writes every simulator log the built-in presets
// read into dir, under the file names the simulator drivers use.
func WriteSimulatorOutputs(t *testing.T, dir string) {
	t.Helper()
	for name, content := range map[string]string{
		"battery_output.txt":        BatteryLog,
		"solar_output.txt":          SolarLog,
		"gyroscope_output.txt":      GyroscopeLog,
		"rotation1_output.txt":      IdentityRotation,
		"omega_output.txt":          OmegaLog,
		"accelerometer_output.txt":  AccelerometerLog,
		"voltage_source_output.csv": VoltageSourceCSV,
		"current_source_output.csv": CurrentSourceCSV,
	} {
		WriteFile(t, dir, name, content)
	}
}
