package render

import "html/template"

// pageTemplates holds the markup fragment for every block kind. Fragments
// lean on template conditionals for graceful degradation: a missing field
// drops its sub-element instead of rendering an empty shell.
const pageTemplates = `
{{define "hero"}}
<section class="block block-hero align-{{.Alignment}}">
  {{if .Title}}<h1>{{.Title}}</h1>{{end}}
  {{if .Subtitle}}<p class="hero-subtitle">{{.Subtitle}}</p>{{end}}
  {{if .ImageURL}}<img src="{{.ImageURL}}" alt="">{{end}}
  {{if and .CTALabel .CTAHref}}<a class="hero-cta" href="{{.CTAHref}}">{{.CTALabel}}</a>{{end}}
</section>
{{end}}

{{define "text"}}
<section class="block block-text">{{.HTML}}</section>
{{end}}

{{define "richText"}}
<section class="block block-rich-text">{{.HTML}}</section>
{{end}}

{{define "image"}}
<figure class="block block-image">
  {{if .URL}}<img src="{{.URL}}" alt="{{.Alt}}">{{end}}
  {{if .Caption}}<figcaption>{{.Caption}}</figcaption>{{end}}
</figure>
{{end}}

{{define "cta"}}
{{if and .Label .Href}}
<div class="block block-cta style-{{.Style}}"><a href="{{.Href}}">{{.Label}}</a></div>
{{end}}
{{end}}

{{define "features"}}
<section class="block block-features">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  <div class="feature-grid">
    {{range .Items}}
    <div class="feature">
      {{if .Icon}}<span class="feature-icon">{{.Icon}}</span>{{end}}
      {{if .Title}}<h3>{{.Title}}</h3>{{end}}
      {{if .Body}}<p>{{.Body}}</p>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "pricing"}}
<section class="block block-pricing">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  <div class="pricing-tiers">
    {{range .Tiers}}
    <div class="tier{{if .Highlight}} tier-highlight{{end}}">
      {{if .Name}}<h3>{{.Name}}</h3>{{end}}
      {{if .Price}}<p class="tier-price">{{.Price}}{{if .Period}}<span>/{{.Period}}</span>{{end}}</p>{{end}}
      {{if .Features}}<ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>{{end}}
      {{if and .CTALabel .CTAHref}}<a class="tier-cta" href="{{.CTAHref}}">{{.CTALabel}}</a>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "faq"}}
<section class="block block-faq">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  {{range .Items}}
  {{if .Question}}
  <details>
    <summary>{{.Question}}</summary>
    {{if .Answer}}<p>{{.Answer}}</p>{{end}}
  </details>
  {{end}}
  {{end}}
</section>
{{end}}

{{define "testimonials"}}
<section class="block block-testimonials">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  {{range .Items}}
  {{if .Quote}}
  <blockquote>
    <p>{{.Quote}}</p>
    {{if .Author}}<cite>{{.Author}}{{if .Role}}, {{.Role}}{{end}}</cite>{{end}}
  </blockquote>
  {{end}}
  {{end}}
</section>
{{end}}

{{define "table"}}
<section class="block block-table">
  <table>
    {{if .Caption}}<caption>{{.Caption}}</caption>{{end}}
    {{if .Header}}<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>{{end}}
    <tbody>
      {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
    </tbody>
  </table>
</section>
{{end}}

{{define "divider"}}
<hr class="block block-divider{{if .Style}} style-{{.Style}}{{end}}">
{{end}}

{{define "embed"}}
{{if .URL}}
<section class="block block-embed">
  <iframe src="{{.URL}}" title="{{.Title}}"{{if .Height}} height="{{.Height}}"{{end}} loading="lazy"></iframe>
</section>
{{end}}
{{end}}

{{define "products"}}
<section class="block block-products">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  <div class="product-list{{if .Columns}} columns-{{.Columns}}{{end}}">
    {{range .Products}}
    <div class="product{{if not .InStock}} out-of-stock{{end}}">
      {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
      <h3>{{if .URL}}<a href="{{.URL}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</h3>
      {{if .PriceLabel}}<p class="product-price">{{.PriceLabel}}</p>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "chat"}}
<div class="block block-chat" data-online="{{.Online}}"{{if .ConversationID}} data-conversation="{{.ConversationID}}"{{end}}>
  {{if .Greeting}}<p class="chat-greeting">{{.Greeting}}</p>{{end}}
  <input type="text" placeholder="{{.Placeholder}}" disabled>
</div>
{{end}}

{{define "blogPosts"}}
<section class="block block-blog-posts">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  <ul>
    {{range .Posts}}
    <li>
      <h3>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
      {{if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}
    </li>
    {{end}}
  </ul>
</section>
{{end}}

{{define "kbArticles"}}
<section class="block block-kb-articles">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  <ul>
    {{range .Articles}}
    <li>
      <h3>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
      {{if .Summary}}<p>{{.Summary}}</p>{{end}}
    </li>
    {{end}}
  </ul>
</section>
{{end}}

{{define "newsletterSignup"}}
<section class="block block-newsletter">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  <form method="post" action="/newsletter/subscribe">
    <input type="email" name="email" required>
    <button type="submit">{{.ButtonLabel}}</button>
  </form>
  {{if .Disclaimer}}<p class="newsletter-disclaimer">{{.Disclaimer}}</p>{{end}}
</section>
{{end}}

{{define "booking"}}
<section class="block block-booking"{{if .ServiceID}} data-service="{{.ServiceID}}"{{end}}>
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
</section>
{{end}}

{{define "columns"}}
<div class="block block-columns ratio-{{.RatioClass}}">
  <div class="column column-left">{{.Left}}</div>
  <div class="column column-right">{{.Right}}</div>
</div>
{{end}}

{{define "tabs"}}
<div class="block block-tabs">
  {{range .Tabs}}
  <section class="tab">
    {{if .Title}}<h2 class="tab-title">{{.Title}}</h2>{{end}}
    <div class="tab-content">{{.Content}}</div>
  </section>
  {{end}}
</div>
{{end}}

{{define "editPlaceholder"}}
<div class="block block-placeholder placeholder-{{.Class}}" data-block="{{.BlockID}}">
  <p>{{.Message}}</p>
  {{if .ActionHref}}<a href="{{.ActionHref}}">{{.ActionLabel}}</a>{{end}}
</div>
{{end}}
`

func mustParseTemplates() *template.Template {
	return template.Must(template.New("blocks").Parse(pageTemplates))
}
