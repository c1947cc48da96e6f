package site

// pageTemplate is the html/template for every page of the site.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteName}}</title>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body>
  <header class="top-bar">
    <a href="/" class="site-name">{{.SiteName}}</a>
    <input type="search" id="search-input" placeholder="Search docs..." autocomplete="off">
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <svg width="18" height="18" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="5"/></svg>
    </button>
  </header>
  <div class="search-results" id="search-results" hidden></div>
  <div class="layout">
    {{- if .Sidebar}}
    <nav class="sidebar-desktop" aria-label="{{.SidebarName}}">
      {{.Sidebar}}
    </nav>
    <div class="sidebar-mobile-bar">
      {{.Mobile}}
    </div>
    {{- end}}
    <main class="content">
      <article class="page-content">
        {{.Content}}
      </article>
    </main>
  </div>
  <script src="/assets/script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --sidebar-width: 280px;
  --content-max-width: 900px;
  --top-bar-height: 56px;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --code-bg: #1f2030;
}

*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

/* ============ Top bar ============ */
.top-bar {
  display: flex;
  align-items: center;
  gap: 16px;
  height: var(--top-bar-height);
  padding: 0 24px;
  border-bottom: 1px solid var(--border);
  background: var(--bg);
  position: sticky;
  top: 0;
  z-index: 50;
}

.site-name {
  font-weight: 700;
  color: var(--accent);
  text-decoration: none;
  margin-right: auto;
}

#search-input {
  width: 260px;
  padding: 6px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}

.theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  cursor: pointer;
  padding: 6px;
  display: flex;
}

.search-results {
  position: absolute;
  right: 24px;
  top: var(--top-bar-height);
  width: 420px;
  max-height: 60vh;
  overflow-y: auto;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  z-index: 60;
}

.search-results a {
  display: block;
  padding: 8px 12px;
  color: var(--text);
  text-decoration: none;
  border-bottom: 1px solid var(--border);
}

.search-results a:hover {
  background: var(--accent-light);
}

.search-results small {
  display: block;
  color: var(--text-muted);
}

/* ============ Layout ============ */
.layout {
  display: flex;
}

.sidebar-desktop {
  width: var(--sidebar-width);
  flex-shrink: 0;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: sticky;
  top: var(--top-bar-height);
  height: calc(100vh - var(--top-bar-height));
  overflow-y: auto;
}

.content {
  flex: 1;
  min-width: 0;
}

/* ============ Sidebar ============ */
.doc-sidebar {
  padding: 16px 8px;
}

.sidebar-name {
  font-size: 0.75rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
  padding: 0 8px 8px;
}

.sidebar-list {
  list-style: none;
}

.sidebar-list.nested {
  padding-left: 12px;
  border-left: 1px solid var(--border);
  margin-left: 10px;
}

.sidebar-link,
.sidebar-heading-link,
.sidebar-trigger-link {
  display: block;
  padding: 3px 8px;
  font-size: 0.85rem;
  color: var(--text-secondary);
  text-decoration: none;
  border-radius: 4px;
}

.sidebar-link:hover {
  background: var(--accent-light);
  color: var(--accent);
}

.sidebar-link.active,
.sidebar-heading-link.active,
.sidebar-trigger.active .sidebar-trigger-link {
  background: var(--accent-light);
  color: var(--accent);
  font-weight: 600;
}

.sidebar-group.static {
  margin-top: 12px;
}

.sidebar-heading {
  display: flex;
  align-items: center;
  gap: 6px;
  font-weight: 600;
  font-size: 0.85rem;
  padding: 2px 8px;
}

.sidebar-heading-link {
  padding: 0;
}

.sidebar-trigger {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 3px 8px;
  font-size: 0.85rem;
  cursor: pointer;
  list-style: none;
  user-select: none;
}

.sidebar-trigger::-webkit-details-marker {
  display: none;
}

.sidebar-trigger::after {
  content: "\25B6";
  font-size: 0.6rem;
  color: var(--text-muted);
  transition: transform 0.15s;
}

details[open] > .sidebar-trigger::after {
  transform: rotate(90deg);
}

.sidebar-trigger-link {
  padding: 0;
  flex: 1;
}

.sidebar-trigger-label {
  display: inline-flex;
  align-items: center;
  gap: 6px;
}

.sidebar-icon {
  width: 20px;
  height: 20px;
  flex-shrink: 0;
}

.sidebar-icon-element {
  display: inline-flex;
}

.sidebar-icon-element > * {
  width: 20px;
  height: 20px;
}

/* ============ Mobile sidebar ============ */
.sidebar-mobile-bar {
  display: none;
}

.sidebar-mobile-trigger {
  display: flex;
  align-items: center;
  justify-content: space-between;
  width: 100%;
  padding: 10px 16px;
  background: var(--bg-secondary);
  border: none;
  border-bottom: 1px solid var(--border);
  color: var(--text);
  font-size: 0.9rem;
  cursor: pointer;
}

.sidebar-mobile-trigger[aria-expanded="true"] .sidebar-chevron {
  transform: rotate(180deg);
}

.sidebar-mobile-panel {
  position: fixed;
  left: 0;
  right: 0;
  bottom: 0;
  top: calc(var(--top-bar-height) + 44px);
  overflow-y: auto;
  background: var(--bg);
  z-index: 40;
}

/* ============ Page content ============ */
.page-content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 32px 40px 80px;
}

.page-content h1 {
  font-size: 2rem;
  margin-bottom: 16px;
}

.page-content h2 {
  font-size: 1.4rem;
  margin: 32px 0 12px;
  padding-bottom: 6px;
  border-bottom: 1px solid var(--border);
}

.page-content h3 {
  font-size: 1.15rem;
  margin: 24px 0 8px;
}

.page-content p,
.page-content ul,
.page-content ol {
  margin-bottom: 14px;
}

.page-content ul, .page-content ol {
  padding-left: 24px;
}

.page-content a {
  color: var(--accent);
}

.page-content code {
  font-family: "SF Mono", Menlo, Consolas, monospace;
  font-size: 0.85em;
  background: var(--code-bg);
  padding: 2px 5px;
  border-radius: 4px;
}

.page-content pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 14px 16px;
  overflow-x: auto;
  margin-bottom: 16px;
}

.page-content pre code {
  background: none;
  padding: 0;
}

.page-content table {
  border-collapse: collapse;
  margin-bottom: 16px;
}

.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 6px 12px;
}

@media (max-width: 768px) {
  .layout {
    flex-direction: column;
  }
  .sidebar-desktop {
    display: none;
  }
  .sidebar-mobile-bar {
    display: block;
    position: sticky;
    top: var(--top-bar-height);
    z-index: 45;
  }
  #search-input {
    width: 140px;
  }
  .search-results {
    left: 8px;
    right: 8px;
    width: auto;
  }
  .page-content {
    padding: 24px 16px 64px;
  }
}
`

// jsContent is the client runtime: sidebar actions, mobile overlay, theme and search.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  // ===== Theme toggle =====
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("docsite-theme", theme); } catch(e) {}
  }

  var stored = null;
  try { stored = localStorage.getItem("docsite-theme"); } catch(e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Mobile overlay =====
  function setOverlay(root, open) {
    var trigger = root.querySelector("[data-sidebar-toggle]");
    var panel = document.getElementById(trigger.getAttribute("aria-controls"));
    trigger.setAttribute("aria-expanded", open ? "true" : "false");
    panel.hidden = !open;
    document.body.style.overflow = open ? "hidden" : "auto";
  }

  document.querySelectorAll("[data-sidebar-mobile]").forEach(function(root) {
    var trigger = root.querySelector("[data-sidebar-toggle]");
    trigger.addEventListener("click", function() {
      setOverlay(root, trigger.getAttribute("aria-expanded") !== "true");
    });
  });

  // ===== Sidebar link actions =====
  // Each name in data-sidebar-actions runs once, in order, before navigation.
  var actions = {
    "close-sidebar-overlay": function(link) {
      var root = link.closest("[data-sidebar-mobile]");
      if (root) setOverlay(root, false);
    }
  };
  window.docsiteSidebarActions = actions;

  document.addEventListener("click", function(e) {
    var link = e.target.closest("a[data-sidebar-actions]");
    if (!link) return;
    link.getAttribute("data-sidebar-actions").split(" ").forEach(function(name) {
      var fn = actions[name];
      if (fn) fn(link);
    });
  });

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  var index = null;

  function loadIndex() {
    if (index !== null) return Promise.resolve(index);
    return fetch("/search-content.json")
      .then(function(r) { return r.ok ? r.json() : []; })
      .then(function(data) { index = data || []; return index; })
      .catch(function() { index = []; return index; });
  }

  function escapeHTML(s) {
    var d = document.createElement("div");
    d.textContent = s;
    return d.innerHTML;
  }

  function search(query) {
    var q = query.toLowerCase();
    var hits = [];
    index.forEach(function(page) {
      if (page.title.toLowerCase().indexOf(q) !== -1) {
        hits.push({ title: page.title, href: page.href, context: "" });
      }
      (page.sections || []).forEach(function(section) {
        if ((section.title + " " + section.content).toLowerCase().indexOf(q) !== -1) {
          hits.push({ title: section.title || page.title, href: section.href, context: page.title });
        }
      });
    });
    return hits.slice(0, 20);
  }

  if (searchInput && results) {
    searchInput.addEventListener("input", function() {
      var query = this.value.trim();
      if (query.length < 2) {
        results.hidden = true;
        return;
      }
      loadIndex().then(function() {
        var hits = search(query);
        results.innerHTML = hits.map(function(h) {
          return '<a href="' + escapeHTML(h.href) + '">' + escapeHTML(h.title) +
            (h.context ? "<small>" + escapeHTML(h.context) + "</small>" : "") + "</a>";
        }).join("") || '<a href="#">No results</a>';
        results.hidden = false;
      });
    });

    document.addEventListener("keydown", function(e) {
      if (e.key === "Escape") results.hidden = true;
    });
  }
})();
`
