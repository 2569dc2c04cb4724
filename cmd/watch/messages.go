package main

import (
	"time"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// AnalysisResultMsg carries a fresh analysis for one watched symbol.
type AnalysisResultMsg struct {
	Result *types.AnalysisResult
}

// AnalysisErrorMsg indicates that one symbol failed to refresh.
type AnalysisErrorMsg struct {
	Symbol string
	Err    error
}

// RefreshTickMsg triggers the next refresh cycle.
type RefreshTickMsg time.Time
