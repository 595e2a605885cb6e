package protocol

import "testing"

func TestMeasurementString(t *testing.T) {
	m := Measurement{PM25: 1236, PM10: 2618}

	want := "PM2.5: 123.6 µg/m³, PM10: 261.8 µg/m³"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMeasurementMicrograms(t *testing.T) {
	m := Measurement{PM25: 5, PM10: 100}

	if got := m.PM25Micrograms(); got != 0.5 {
		t.Errorf("PM25Micrograms() = %v, want 0.5", got)
	}

	if got := m.PM10Micrograms(); got != 10.0 {
		t.Errorf("PM10Micrograms() = %v, want 10.0", got)
	}
}

func TestFirmwareVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version FirmwareVersion
		want    string
	}{
		{
			name:    "single digit month and day",
			version: FirmwareVersion{Year: 15, Month: 7, Day: 10},
			want:    "2015.07.10",
		},
		{
			name:    "double digits",
			version: FirmwareVersion{Year: 18, Month: 11, Day: 23},
			want:    "2018.11.23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModeStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "query mode query", got: QueryModeQuery.String(), want: "query"},
		{name: "query mode set", got: QueryModeSet.String(), want: "set"},
		{name: "query mode unknown", got: QueryMode(7).String(), want: "QueryMode(7)"},
		{name: "reporting active", got: ReportingModeActive.String(), want: "active"},
		{name: "reporting query", got: ReportingModeQuery.String(), want: "query"},
		{name: "reporting unknown", got: ReportingMode(7).String(), want: "ReportingMode(7)"},
		{name: "sleep", got: SleepModeSleep.String(), want: "sleep"},
		{name: "work", got: SleepModeWork.String(), want: "work"},
		{name: "sleep unknown", got: SleepMode(7).String(), want: "SleepMode(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
