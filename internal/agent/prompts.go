package agent

const classifyPrompt = `Classify this PDF into one of: bill, discharge_summary, id_card, pharmacy_bill, claim_form, other.
Respond as JSON: { "type": "<one_of_the_options>" }`

const billPrompt = `You are a hospital bill extraction assistant. Given the document text, extract strict JSON with:
- hospital_name
- patient_name
- invoice_number
- date (YYYY-MM-DD or null)
- total_amount (number) or null
Return JSON only.`

const dischargePrompt = `You are a discharge summary extraction assistant. Extract JSON:
- patient_name
- discharge_date (YYYY-MM-DD)
- diagnosis
- treating_doctor
Return JSON only.`

const idCardPrompt = `You are an identity document extraction assistant. From the provided text extract:
- name
- id_number
- dob (YYYY-MM-DD or null)
Return JSON only.`

// buildPrompt appends the document text to an instruction block. A nil
// text still produces a valid prompt; the model sees an empty document.
func buildPrompt(instructions string, text *string) string {
	body := ""
	if text != nil {
		body = *text
	}
	return instructions + "\n\nDocument text:\n" + body
}
