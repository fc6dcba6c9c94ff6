// Package pdf renders contract HTML to PDF through a Gotenberg-compatible
// headless-browser service and validates the result before handing it to the
// caller.
package pdf

import "strings"

// footerNotice is appended below the contract body on every generated PDF.
const footerNotice = `* 본 계약서는 Contract Auto-Bot에 의해 자동 생성되었습니다.`

// documentShell wraps a contract fragment in the full HTML page the renderer
// prints. The page pulls Noto Sans KR so Korean text survives the headless
// browser's default font set, and loads Tailwind since templates carry its
// utility classes.
const documentShell = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: 'Noto Sans KR', sans-serif; padding: 40px; font-size: 14px; line-height: 1.6; }
      .footer { margin-top: 30px; text-align: center; font-size: 10px; color: #888; }
      @media print {
        body { -webkit-print-color-adjust: exact; }
      }
    </style>
    <script src="https://cdn.tailwindcss.com"></script>
    <script>
      tailwind.config = {
        theme: {
          extend: {
            fontFamily: {
              sans: ['Noto Sans KR', 'sans-serif'],
            },
          },
        },
      }
    </script>
    <link href="https://fonts.googleapis.com/css2?family=Noto+Sans+KR:wght@400;700&display=swap" rel="stylesheet">
  </head>
  <body>
    {{BODY}}

    <div class="footer">
      ` + footerNotice + `
    </div>
  </body>
</html>`

// Document wraps rendered contract HTML in the printable page shell.
func Document(body string) string {
	return strings.Replace(documentShell, "{{BODY}}", body, 1)
}
