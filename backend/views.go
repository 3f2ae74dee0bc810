package backend

import (
	"html/template"
	"io"

	"github.com/google/uuid"
	"github.com/jackc/cardform/cardform"
)

// Container is a titled box around one or more inputs.
type Container struct {
	Title    string
	Size     string
	HelpText string
	Inputs   []Input
	// Masks is the number of static placeholder marks rendered after the
	// inputs.
	Masks int
}

type Input struct {
	ID          string
	Type        string
	Placeholder string
	MaxLength   int
	Value       string
	Required    bool
}

type formPage struct {
	FormID     string
	Containers []Container
	Complete   bool
}

type groupView struct {
	group    cardform.Group
	title    string
	size     string
	helpText string
	masks    int
}

var groupViews = []groupView{
	{group: cardform.CardNumberGroup, title: "카드번호"},
	{group: cardform.ExpirationDateGroup, title: "만료일", size: "w-50"},
	{group: cardform.OwnerNameGroup, title: "카드 소유자 이름(선택)"},
	{group: cardform.SecurityCodeGroup, title: "보안코드(CVC/CVV)", size: "w-25", helpText: "카드 뒷면 서명란 또는 신용카드 번호 오른쪽 상단에 기재된 3자리 숫자"},
	{group: cardform.PasswordGroup, title: "카드 비밀번호", size: "w-50", masks: 2},
}

var inputTypes = map[cardform.FieldID]string{
	cardform.CardNumberThird:  "password",
	cardform.CardNumberFourth: "password",
	cardform.SecurityCode:     "password",
}

var placeholders = map[cardform.FieldID]string{
	cardform.ExpirationMonth: "MM",
	cardform.ExpirationYear:  "YY",
	cardform.OwnerName:       "카드에 표시된 이름과 동일하게 입력하세요.",
}

func newFormPage(formID uuid.UUID, controller *cardform.Controller) formPage {
	state := controller.State()

	page := formPage{FormID: formID.String(), Complete: controller.Complete()}
	for _, gv := range groupViews {
		container := Container{Title: gv.title, Size: gv.size, HelpText: gv.helpText, Masks: gv.masks}
		for _, id := range cardform.GroupFields(gv.group) {
			inputType := inputTypes[id]
			if inputType == "" {
				inputType = "text"
			}
			container.Inputs = append(container.Inputs, Input{
				ID:          id.String(),
				Type:        inputType,
				Placeholder: placeholders[id],
				MaxLength:   id.MaxLength(),
				Value:       state.Value(id),
				Required:    id.Group() != cardform.OwnerNameGroup,
			})
		}
		page.Containers = append(page.Containers, container)
	}

	return page
}

func RenderForm(w io.Writer, page formPage) error {
	return formTemplate.Execute(w, page)
}

var formTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"masks": func(n int) []struct{} { return make([]struct{}, n) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>카드 추가</title>
</head>
<body>
<form id="card-form" data-form-id="{{.FormID}}">
{{- range .Containers}}
  {{template "container" .}}
{{- end}}
  <button id="submit-button" class="button-box" type="submit"{{if not .Complete}} hidden{{end}}>
    <span class="button-text">다음</span>
  </button>
</form>
<script>{{template "script"}}</script>
</body>
</html>
{{define "container"}}<div class="input-container">
    <span class="input-title">{{.Title}}</span>
    <div class="input-box {{.Size}}">
    {{- range .Inputs}}
      <input id="{{.ID}}" data-field="{{.ID}}" class="input-basic" type="{{.Type}}" maxlength="{{.MaxLength}}" value="{{.Value}}"{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .Required}} required{{end}}>
    {{- end}}
    {{- range masks .Masks}}
      <div class="inputted-password">*</div>
    {{- end}}
    </div>
    {{- if .HelpText}}
    <span class="input-help">{{.HelpText}}</span>
    {{- end}}
  </div>{{end}}
{{define "script"}}
(function() {
  var form = document.getElementById("card-form");
  var submit = document.getElementById("submit-button");
  var base = "/forms/" + form.dataset.formId;
  var pending = Promise.resolve();
  var expired = false;

  function enqueue(fn) {
    pending = pending.then(function() {
      if (!expired) { return fn(); }
    }).catch(function(err) {
      console.error(err);
      if (err.status === 404) {
        expired = true;
        alert("입력 시간이 만료되었습니다. 페이지를 새로고침해주세요.");
      } else {
        alert("요청을 처리하지 못했습니다. 다시 시도해주세요.");
      }
    });
    return pending;
  }

  function post(path, body) {
    return fetch(base + path, {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(body || {})
    }).then(function(resp) {
      if (!resp.ok) {
        var err = new Error(resp.status + " " + resp.statusText);
        err.status = resp.status;
        throw err;
      }
      return resp.json();
    });
  }

  form.querySelectorAll("input[data-field]").forEach(function(input) {
    input.addEventListener("input", function() {
      var field = input.dataset.field;
      var value = input.value;
      enqueue(function() {
        return post("/fields/" + field, {value: value}).then(function(change) {
          submit.hidden = !change.complete;
          // Newer keystrokes are still queued and their responses win.
          if (input.value !== value) { return; }
          input.value = change.value;
          if (change.focus !== field) {
            var next = document.getElementById(change.focus);
            if (next) { next.focus(); }
          }
        });
      });
    });
  });

  form.addEventListener("submit", function(e) {
    e.preventDefault();
    enqueue(function() {
      return post("/submit").then(function(result) { alert(result.message); });
    });
  });

  window.addEventListener("pagehide", function() {
    fetch(base, {method: "DELETE", keepalive: true});
  });
})();
{{end}}`))
