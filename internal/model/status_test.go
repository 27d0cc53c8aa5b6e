package model

import "testing"

func TestTimerStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TimerStatus
		expected bool
	}{
		{TimerStatusIdle, false},
		{TimerStatusRunning, true},
		{TimerStatusPaused, false},
		{TimerStatusFinished, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TimerStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTimerStatus_CanStart(t *testing.T) {
	tests := []struct {
		status   TimerStatus
		expected bool
	}{
		{TimerStatusIdle, true},
		{TimerStatusRunning, false},
		{TimerStatusPaused, true},
		{TimerStatusFinished, true},
	}

	for _, test := range tests {
		result := test.status.CanStart()
		if result != test.expected {
			t.Errorf("TimerStatus(%s).CanStart() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTimerStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TimerStatus
		expected bool
	}{
		{TimerStatusIdle, false},
		{TimerStatusRunning, false},
		{TimerStatusPaused, false},
		{TimerStatusFinished, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TimerStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTimerStatus_String(t *testing.T) {
	status := TimerStatusPaused
	expected := "Paused"
	result := status.String()

	if result != expected {
		t.Errorf("TimerStatus.String() = %s, expected %s", result, expected)
	}
}
