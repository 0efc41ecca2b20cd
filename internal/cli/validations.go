package cli

// validateMemFlags validates the flags of the mem command.
func validateMemFlags() string {
	// A zero-sized buffer cannot be benchmarked.
	if memBufferSize <= 0 {
		return "Buffer size must be greater than 0."
	}

	// At least 1 cycle required.
	if memIterations <= 0 {
		return "Iterations must be greater than 0."
	}

	// Continuous mode needs a stopping condition, or it would never end.
	if memContinuous && memMaxRuns <= 0 && memMaxDuration <= 0 {
		return "Continuous mode requires --max-runs or --max-duration."
	}

	return ""
}

// validateCPUFlags validates the flags of the cpu command.
func validateCPUFlags() string {
	if cpuIterations <= 0 {
		return "Iterations must be greater than 0."
	}

	return ""
}

// validateNetFlags validates the flags of the net command.
func validateNetFlags() string {
	// Target host is required.
	if netHost == "" {
		return "A target host is required."
	}

	if netPort <= 0 || netPort > 65535 {
		return "Port must be between 1 and 65535."
	}

	if netPayloadSize <= 0 {
		return "Payload size must be greater than 0."
	}

	if netIterations <= 0 {
		return "Iterations must be greater than 0."
	}

	return ""
}

// validateAllFlags validates the flags of the all command.
func validateAllFlags() string {
	if message := validateMemFlags(); message != "" {
		return message
	}

	if message := validateCPUFlags(); message != "" {
		return message
	}

	// The network probe is optional in the combined command; it only runs
	// when a target host is given.
	if netHost != "" {
		return validateNetFlags()
	}

	return ""
}
