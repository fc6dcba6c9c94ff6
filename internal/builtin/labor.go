package builtin

import (
	"fmt"

	"github.com/8bitGames/auto-contract/internal/render"
	"github.com/8bitGames/auto-contract/internal/store"
)

var laborContract = &Template{
	ID:          "labor_contract",
	Title:       "표준 근로계약서",
	Description: "일반적인 근로 계약을 위한 표준 양식입니다.",
	Sections: []store.Section{
		{
			ID:    "parties",
			Title: "당사자 정보",
			Fields: []store.Field{
				{ID: "employer_name", Label: "사업주명 (갑)", Type: store.FieldText, Placeholder: "주식회사 컴퍼니", Required: true},
				{ID: "employee_name", Label: "근로자명 (을)", Type: store.FieldText, Placeholder: "홍길동", Required: true},
			},
		},
		{
			ID:    "period",
			Title: "계약 기간",
			Fields: []store.Field{
				{ID: "start_date", Label: "시작일", Type: store.FieldDate, Required: true},
				{ID: "end_date", Label: "종료일 (선택)", Type: store.FieldDate},
			},
		},
		{
			ID:    "work",
			Title: "업무 및 급여",
			Fields: []store.Field{
				{ID: "job_description", Label: "업무 내용", Type: store.FieldText, Placeholder: "소프트웨어 개발", Required: true},
				{ID: "salary", Label: "월 급여 (원)", Type: store.FieldCurrency, Placeholder: "3000000", Required: true},
				{ID: "payment_date", Label: "급여 지급일", Type: store.FieldNumber, Placeholder: "25", Required: true},
			},
		},
	},
	Render: renderLaborContract,
}

func renderLaborContract(data map[string]string) string {
	salary := "_________"
	if data["salary"] != "" {
		salary = render.FormatWon(data["salary"])
	}

	return fmt.Sprintf(`
    <h1 class="text-2xl font-bold text-center mb-8">표준 근로계약서</h1>
    <div class="mb-6">
      <p class="mb-2">
        <span class="font-bold">%s</span> (이하 "갑"이라 함)과(와)
        <span class="font-bold">%s</span> (이하 "을"이라 함)은(는) 다음과 같이 근로계약을 체결한다.
      </p>
    </div>
    <ol class="list-decimal list-outside pl-5 space-y-4">
      <li>
        <span class="font-bold">근로계약기간</span>:
        %s 부터 %s 까지
      </li>
      <li>
        <span class="font-bold">근무장소 및 업무내용</span>:
        <p class="pl-2">- 업무내용: %s</p>
      </li>
      <li>
        <span class="font-bold">근로시간 및 휴게시간</span>:
        <p class="pl-2">- 근로시간: 09:00 부터 18:00 까지</p>
        <p class="pl-2">- 휴게시간: 12:00 부터 13:00 까지</p>
      </li>
      <li>
        <span class="font-bold">임금</span>:
        <p class="pl-2">- 월급: %s 원</p>
        <p class="pl-2">- 지급일: 매월 %s 일</p>
      </li>
      <li>
        <span class="font-bold">기타</span>:
        <p class="pl-2">- 이 계약에 정함이 없는 사항은 근로기준법 등 노동관계법령에 따른다.</p>
      </li>
    </ol>
    <div class="mt-12 flex justify-between items-end">
      <div class="text-center">
        <p class="mb-4 font-bold">(사업주)</p>
        <p>상호: ________________</p>
        <p>주소: ________________</p>
        <p>대표자: %s (서명)</p>
      </div>
      <div class="text-center">
        <p class="mb-4 font-bold">(근로자)</p>
        <p>주소: ________________</p>
        <p>연락처: ________________</p>
        <p>성명: %s (서명)</p>
      </div>
    </div>
`,
		value(data, "employer_name", "(사업주)"),
		value(data, "employee_name", "(근로자)"),
		value(data, "start_date", "____. __. __"),
		value(data, "end_date", "____. __. __"),
		value(data, "job_description", "____________________"),
		salary,
		value(data, "payment_date", "__"),
		value(data, "employer_name", "__________"),
		value(data, "employee_name", "__________"),
	)
}
