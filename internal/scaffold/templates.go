package scaffold

// Each template carries YAML frontmatter naming the file it produces,
// relative to the new project root. Bodies are text/template with the
// sprig function map.
var templates = []string{
	manifestTemplate,
	readmeTemplate,
	licenseTemplate,
	authorsTemplate,
	gitignoreTemplate,
}

const manifestTemplate = `---
path: mason.yaml
---
name: {{ .Name }}
version: {{ .Version | quote }}
{{- if .Description }}
description: {{ .Description | quote }}
{{- end }}
{{- if .Vendor }}
vendor: {{ .Vendor | quote }}
{{- end }}

targets: []
`

const readmeTemplate = `---
path: README.md
---
# {{ .Name | title }}

{{ if .Description }}{{ .Description }}{{ else }}TODO: describe this project.{{ end }}

## Building

Run ` + "`mason configure`" + ` in the project root, then build as usual.
`

const licenseTemplate = `---
path: COPYING.txt
---
Copyright (c) {{ now | date "2006" }} {{ if .Vendor }}{{ .Vendor }}{{ else }}the {{ .Name }} authors{{ end }}.

All rights reserved. Replace this placeholder with the license this
project is actually distributed under.
`

const authorsTemplate = `---
path: AUTHORS.txt
---
{{ if .Vendor }}{{ .Vendor }}{{ else }}# Add the authors of {{ .Name }}, one per line.{{ end }}
`

const gitignoreTemplate = `---
path: .gitignore
---
/build/
`
