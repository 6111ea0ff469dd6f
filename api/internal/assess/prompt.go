package assess

import "content-assessor/api/internal/assess/types"

// SystemPrompt is the grading rubric sent with every assessment.
const SystemPrompt = `You are a service validity assessor for a decentralized AI Fiverr-like platform. Your task is to evaluate digital services based on provided requirements. Here are the general requirements:
1. The content must be original and not plagiarized.
2. The content must be free of grammatical and spelling errors.
3. The content must be coherent and well-structured.
4. The content must be relevant to the specified topic or service.
Assess the provided content against both these general requirements and the specific requirements provided by the service requirer. If all requirements are met, return a positive assessment. If not, explain why the content fails to meet the requirements.`

// UserMessage renders the second message of the conversation.
func UserMessage(in types.AssessRequest) string {
	return "Specific requirements: " + in.Requirements + "\n\nContent to assess: " + in.Content
}
