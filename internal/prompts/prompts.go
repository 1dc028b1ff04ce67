// Package prompts holds the guided analysis workflows published to
// calling agents alongside the tools.
package prompts

import (
	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

// Argument describes one prompt parameter.
type Argument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Prompt is a named analysis workflow.
type Prompt struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Arguments   []Argument `json:"arguments"`
}

// Message is one turn of a workflow handed to the calling agent.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// List returns the available prompts.
func List() []Prompt {
	return []Prompt{
		{
			Name:        "analyze_loan_estimate",
			Description: "Structured workflow for analyzing a Loan Estimate",
			Arguments: []Argument{
				{
					Name:        "analysis_type",
					Description: "Type of analysis: quick, comprehensive, or compliance",
					Required:    false,
				},
			},
		},
		{
			Name:        "compare_loan_options",
			Description: "Guide for comparing multiple loan offers side by side",
			Arguments:   []Argument{},
		},
	}
}

// Get returns the messages for a named prompt. analysis_type defaults
// to "comprehensive".
func Get(name string, args map[string]string) ([]Message, error) {
	switch name {
	case "analyze_loan_estimate":
		analysisType := args["analysis_type"]
		if analysisType == "" {
			analysisType = "comprehensive"
		}
		switch analysisType {
		case "quick":
			return []Message{{Role: "user", Content: quickAnalysis}}, nil
		case "compliance":
			return []Message{{Role: "user", Content: complianceAnalysis}}, nil
		default:
			return []Message{{Role: "user", Content: comprehensiveAnalysis}}, nil
		}
	case "compare_loan_options":
		return []Message{{Role: "user", Content: compareOptions}}, nil
	default:
		return nil, models.NewUnknownOperationError(name)
	}
}

const quickAnalysis = `Review this Loan Estimate and provide a brief summary:

1. Key loan terms (amount, rate, APR, monthly payment)
2. Total closing costs
3. Any unusual items that stand out

Keep response concise (3-4 sentences).`

const comprehensiveAnalysis = `Perform a comprehensive Loan Estimate analysis:

## 1. Loan Terms Analysis
- Loan amount and property value (LTV ratio)
- Interest rate competitiveness
- APR vs interest rate (are fees reasonable?)
- Monthly payment affordability
- Loan term appropriateness

## 2. Closing Costs Breakdown
Review each section:
- Origination charges (A): Are points/fees justified?
- Services borrower cannot shop (B): Reasonable for market?
- Services borrower can shop (C): Opportunity to save?
- Taxes and government fees (E): Accurate for jurisdiction?
- Prepaids (F): Correctly calculated?
- Initial escrow (G): Sufficient cushion?
- Other costs (H): Any surprises?

## 3. Tolerance Bucket Analysis
- Identify all zero-tolerance fees
- Identify 10% tolerance fees
- Explain what can change before closing

## 4. Red Flags & Concerns
- Unusually high fees
- Missing disclosures
- Potential for bait-and-switch
- APR significantly higher than rate

## 5. Borrower Questions
Suggest 3-5 questions borrower should ask lender

## 6. Recommendations
- Should borrower shop around?
- Are there opportunities to negotiate?
- Overall assessment: good/fair/poor deal?

Format as a detailed report suitable for borrower consultation.`

const complianceAnalysis = `TRID Compliance Review Checklist:

## Required Disclosures
- [ ] Loan terms clearly stated
- [ ] Itemization of closing costs
- [ ] Cash to close calculation
- [ ] Comparisons section
- [ ] Other considerations section
- [ ] Contact information
- [ ] Loan estimate form used (not old GFE)

## Timing Compliance
- [ ] Provided within 3 business days of application
- [ ] At least 7 business days before closing
- [ ] Received by borrower (not just sent)

## Accuracy Requirements
- [ ] APR within 0.125% of final APR (estimate)
- [ ] Tolerance buckets correctly assigned
- [ ] All required fees disclosed
- [ ] No junk fees or padding

## Consumer Protections
- [ ] Loan features clearly explained
- [ ] Risks disclosed (balloon, prepayment penalty, etc.)
- [ ] Ability to repay considered
- [ ] No steering to higher-cost loan

Provide compliance assessment with any deficiencies noted.`

const compareOptions = `Compare these loan options side by side:

## Comparison Factors
1. **Interest Rate & APR**: Which is truly cheaper?
2. **Closing Costs**: Upfront vs ongoing costs
3. **Monthly Payment**: Affordability over loan term
4. **Loan Features**: ARM vs fixed, prepayment penalties, etc.
5. **Break-even Analysis**: If paying points, when do you break even?
6. **Total Cost**: What's paid over full loan term?
7. **Flexibility**: Refinance options, portability

## Recommendation
Based on:
- Borrower's likely time in home
- Financial situation
- Risk tolerance
- Market conditions

Which loan is the best choice and why?`
