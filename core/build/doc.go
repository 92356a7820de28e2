// Package build emits the front-end artifacts of a project.
//
// A Builder copies every source file under the project root into the output
// directory (default "dist"), skipping dot-files, node_modules, moodbank
// config files and the output directory itself, and records each artifact's
// size and SHA-256 in moodbank-manifest.json. A build never writes outside
// its output directory; an output directory that contains the root is
// rejected.
//
// Watch rebuilds on source changes (fsnotify, debounced). Publish mirrors a
// finished build into an object storage bucket and prunes stale objects.
package build
