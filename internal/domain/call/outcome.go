package call

import "strings"

// Words in a transcript summary that indicate the dealer actually named a number.
var quoteKeywords = []string{"quote", "price", "offer"}

// ClassifyOutcome maps a finished call to its terminal status. An unsuccessful
// call is failed no matter what the transcript says; a successful one is quoted
// when the summary mentions pricing language, completed otherwise.
func ClassifyOutcome(callSuccessful bool, transcriptSummary string) Status {
	if !callSuccessful {
		return StatusFailed
	}

	lower := strings.ToLower(transcriptSummary)
	for _, kw := range quoteKeywords {
		if strings.Contains(lower, kw) {
			return StatusQuoted
		}
	}

	return StatusCompleted
}
