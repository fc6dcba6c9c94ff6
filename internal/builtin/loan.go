package builtin

import (
	"fmt"

	"github.com/8bitGames/auto-contract/internal/render"
	"github.com/8bitGames/auto-contract/internal/store"
)

var loanAgreement = &Template{
	ID:          "loan_agreement",
	Title:       "금전소비대차계약서 (차용증)",
	Description: "돈을 빌려주고 갚기로 하는 계약입니다.",
	Sections: []store.Section{
		{
			ID:    "parties",
			Title: "당사자 정보",
			Fields: []store.Field{
				{ID: "lender_name", Label: "대주 (빌려주는 사람)", Type: store.FieldText, Placeholder: "김철수", Required: true},
				{ID: "borrower_name", Label: "차주 (빌리는 사람)", Type: store.FieldText, Placeholder: "이영희", Required: true},
			},
		},
		{
			ID:    "loan_details",
			Title: "대여 조건",
			Fields: []store.Field{
				{ID: "amount", Label: "대여금액 (원)", Type: store.FieldCurrency, Placeholder: "10000000", Required: true},
				{ID: "interest_rate", Label: "이자율 (연 %)", Type: store.FieldNumber, Placeholder: "5", Required: true},
				{ID: "repayment_date", Label: "변제기일", Type: store.FieldDate, Required: true},
			},
		},
	},
	Render: renderLoanAgreement,
}

func renderLoanAgreement(data map[string]string) string {
	amount := "_________"
	if data["amount"] != "" {
		amount = render.FormatWon(data["amount"])
	}

	return fmt.Sprintf(`
    <h1 class="text-2xl font-bold text-center mb-8">금전소비대차계약서</h1>
    <div class="mb-6">
      <p class="mb-2">
        <span class="font-bold">%s</span> (이하 "갑"이라 함)과(와)
        <span class="font-bold">%s</span> (이하 "을"이라 함)은(는) 다음과 같이 금전소비대차계약을 체결한다.
      </p>
    </div>
    <ol class="list-decimal list-outside pl-5 space-y-4">
      <li>
        <span class="font-bold">대여금액</span>:
        일금 %s 원정
      </li>
      <li>
        <span class="font-bold">이자</span>:
        연 %s %% 로 한다.
      </li>
      <li>
        <span class="font-bold">변제기일 및 방법</span>:
        "을"은 %s 까지 원리금 전액을 "갑"에게 변제하여야 한다.
      </li>
    </ol>
    <div class="mt-12 flex justify-between items-end">
      <div class="text-center">
        <p class="mb-4 font-bold">(대주)</p>
        <p>성명: %s (인)</p>
      </div>
      <div class="text-center">
        <p class="mb-4 font-bold">(차주)</p>
        <p>성명: %s (인)</p>
      </div>
    </div>
`,
		value(data, "lender_name", "(대주)"),
		value(data, "borrower_name", "(차주)"),
		amount,
		value(data, "interest_rate", "__"),
		value(data, "repayment_date", "____. __. __"),
		value(data, "lender_name", "__________"),
		value(data, "borrower_name", "__________"),
	)
}
