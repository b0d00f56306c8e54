package summarizer

import (
	"fmt"

	"github.com/luminameet/meetingflow/internal/resolver"
)

// noContentPlaceholder stands in when neither transcript nor notes exist
// but content sources do.
const noContentPlaceholder = "No transcript or notes provided."

const textSeparator = "\n\n---\n\nUser Manual Notes:\n"

const promptTemplate = `You are an expert meeting assistant. Please analyze the following sources:
1. Meeting Transcript (from audio)
2. User manual notes
3. Attached images/PDFs (whiteboards, documents, slides)

Combine the information from all available sources into one cohesive summary. Note that some sources might be missing (e.g., there might be no transcript, only notes and images). Use whatever is provided.

Strictly follow this format:

Main Heading: (Meeting Title based on content)

Executive Summary: (3-4 sentences summarizing the core purpose and outcome)

Key Discussion Points:
* (Discussion Point 1)
  - (Detail)
* (Discussion Point 2)
  - (Detail)

Action Items:
1. (Action Item 1)
2. (Action Item 2)

---
Meeting Content:
%s

Instruction: Integrate everything into a structured summary with headings, subheadings, and action items. If documents (PDFs) or images are attached, extract the key context and merge it with any provided notes or transcripts.`

// CombineText merges the transcript and manual notes into one block:
// both present yields transcript, separator, notes; one present yields
// that one; neither yields the placeholder marker.
func CombineText(transcript, notes string) string {
	switch {
	case transcript != "" && notes != "":
		return transcript + textSeparator + notes
	case transcript != "":
		return transcript
	case notes != "":
		return notes
	default:
		return noContentPlaceholder
	}
}

// BuildRequest assembles the summarization request: the instructional
// prompt embedding the combined text, then the resolved parts in their
// original order.
func BuildRequest(transcript, notes string, parts []*resolver.Part) Request {
	return Request{
		CombinedText: fmt.Sprintf(promptTemplate, CombineText(transcript, notes)),
		Parts:        parts,
	}
}
