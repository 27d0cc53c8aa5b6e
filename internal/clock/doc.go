package clock

// Package clock provides the one-shot delayed callback primitive the countdown
// loop is armed with. System wraps the standard library timers; Manual is a
// deterministic clock whose callbacks run synchronously on Advance.
