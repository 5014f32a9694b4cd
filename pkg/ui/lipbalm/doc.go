/*
Package lipbalm styles terminal text through XML-like tags.

A template marks text by meaning, not by color:

	<Path>{{ .Path | esc }}</Path> <Muted>(working directory)</Muted>

ExpandTags replaces each tag with the lipgloss style registered under its
name in a StyleMap. Tags without a style keep their content unstyled.
Render runs a text/template first and then expands the result.

Whether styles are applied depends on the renderer set with
SetDefaultRenderer. With an Ascii color profile, which is what a pipe, a
dumb terminal or NO_COLOR produce, tags are stripped and the plain text is
printed.

Content of the special <no-format> tag is only printed in plain mode. It
carries the hints that color would otherwise convey:

	<Project>project</Project><no-format> (local)</no-format>

Text substituted into a template must be escaped with the esc function.
Input that is not well-formed is returned as is.
*/
package lipbalm
