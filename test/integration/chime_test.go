package integration_test

import (
	"testing"

	"github.com/renato0307/speechtimer/test/integration/harness"
)

func TestChime(t *testing.T) {
	// In a headless environment (container, CI) there may be no audio device,
	// so the player can fail. Only a clean exit or a sound error is acceptable.
	for _, args := range [][]string{{"chime"}, {"chime", "good"}, {"chime", "too_much"}} {
		t.Run(args[len(args)-1], func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, args...)

			if result.ExitCode != 0 {
				t.Logf("chime exited with code %d (expected in headless env)", result.ExitCode)
				harness.AssertStderrContains(t, result, "Error:")
			}
		})
	}

	t.Run("unknown band", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "chime", "loud")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "unknown band 'loud'")
	})
}
