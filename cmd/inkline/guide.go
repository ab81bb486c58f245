package main

// guideMarkdown is the markup-language reference shown by `inkline guide`.
const guideMarkdown = `# inkline markup

Each input line is one rendering call. A line either starts with a
directive keyword or is rendered as plain, indented text.

## Directives

| Directive | Payload | Effect |
|---|---|---|
| ` + "`@H1 text`" + ` | optional | full-width rule / colored heading / rule |
| ` + "`@H2 text`" + ` | optional | subheading; collapses against a preceding heading |
| ` + "`@DIV text`" + ` | optional | rule, optionally followed by raw text |
| ` + "`@BLOCKQUOTE(text)`" + ` | required | every line prefixed with ` + "`| `" + ` |
| ` + "`@SUCCESS`" + ` | ignored | green ` + "`[  OK  ]`" + ` badge |
| ` + "`@FAILURE`" + ` | ignored | red ` + "`[ FAIL ]`" + ` badge |
| ` + "`@SKIP`" + ` | ignored | blue ` + "`[ SKIP ]`" + ` badge |
| ` + "`@ENTRY`" + ` | ignored | defers the next emission's leading spacing |
| ` + "`@EXIT text`" + ` | optional | closes an entry or heading block |

Keywords are case-insensitive and must start the line. Once a directive
is recognized, the rest of the line is inert payload text.

## Color spans

Inline spans of the form ` + "`@colorname(text)`" + ` work in any payload:

    status: @green(passing), @red(3 failures)

Supported names: none, black, white, blue, blue_lt, green, green_lt,
cyan, cyan_lt, red, red_lt, purple, purple_lt, yellow, yellow_lt, gray,
gray_lt. Unknown names are left as literal text.

## Escapes

` + "`\\@`" + `, ` + "`\\(`" + ` and ` + "`\\)`" + ` render the bare character and never trigger
directives or spans.

## Themes

A YAML theme file (--theme) can override the rule fill characters, badge
strings, blockquote prefix, indent token, and default stream colors:

    fills:
      h1: "#"
      h2: "~"
    badges:
      success: "@green_lt([ PASS ])"
    colors:
      heading: yellow
`
