package nav

import "html/template"

var templates = template.Must(template.New("nav").Parse(navTemplates))

// navTemplates holds the sidebar markup. "item" recurses into group children.
const navTemplates = `
{{- define "sidebar" -}}
<div class="doc-sidebar">
  <p class="sidebar-name">{{.Name}}</p>
  <ul class="sidebar-list styled-scrollbar">
    {{- range .Items}}
    <li>{{template "item" .}}</li>
    {{- end}}
  </ul>
</div>
{{- end -}}

{{- define "item" -}}
{{- if .IsLink -}}
<a href="{{.Href}}" class="sidebar-link{{if .Active}} active{{end}}"{{if .Actions}} data-sidebar-actions="{{.Actions}}"{{end}}>{{.Name}}</a>
{{- else if .IsHeading -}}
<div class="sidebar-group static" data-depth="{{.Depth}}">
  <div class="sidebar-heading">
    {{- with .Icon}}{{template "icon" .}}{{end -}}
    {{- if .Href}}<a href="{{.Href}}" class="sidebar-heading-link{{if .Active}} active{{end}}">{{.Name}}</a>
    {{- else}}<div class="sidebar-heading-text">{{.Name}}</div>{{end -}}
  </div>
  <ul class="sidebar-list">
    {{- range .Children}}
    <li>{{template "item" .}}</li>
    {{- end}}
  </ul>
</div>
{{- else -}}
{{- /* With an href the whole trigger is a link: selecting it navigates and toggles the group. */ -}}
<details class="sidebar-group collapsible" data-depth="{{.Depth}}"{{if .Expanded}} open{{end}}>
  <summary class="sidebar-trigger{{if .Active}} active{{end}}">
    {{- if .Href}}<a href="{{.Href}}" class="sidebar-trigger-link">{{end -}}
    <span class="sidebar-trigger-label">{{with .Icon}}{{template "icon" .}}{{end}}{{.Name}}</span>
    {{- if .Href}}</a>{{end -}}
  </summary>
  <ul class="sidebar-list nested">
    {{- range .Children}}
    <li>{{template "item" .}}</li>
    {{- end}}
  </ul>
</details>
{{- end -}}
{{- end -}}

{{- define "icon" -}}
{{- if .IsImage}}<img src="{{.Src}}" alt="{{.Alt}}" class="sidebar-icon" width="20" height="20">
{{- else}}<span class="sidebar-icon sidebar-icon-element">{{.Markup}}</span>{{end -}}
{{- end -}}

{{- define "mobile" -}}
<div class="sidebar-mobile" data-sidebar-mobile>
  <button type="button" class="sidebar-mobile-trigger" aria-expanded="false" aria-controls="{{.ID}}" data-sidebar-toggle>
    <span>{{.Name}}</span>
    <svg class="sidebar-chevron" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><polyline points="6 9 12 15 18 9"/></svg>
  </button>
  <div class="sidebar-mobile-panel" id="{{.ID}}" hidden>
    {{template "sidebar" .Sidebar}}
  </div>
</div>
{{- end -}}
`
