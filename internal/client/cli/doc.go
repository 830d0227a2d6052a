// Package cli provides the interactive jobwizard command-line client.
//
// Each CLI process behaves like one browser tab working on the actor's
// job-posting draft. It keeps the last draft it saw, sends that version
// with every change, and when another tab got there first it adopts the
// newer draft and says so.
//
// Commands:
//   - get / show          fetch or print the current draft
//   - save <key> [value]  save one field (value is JSON or plain text)
//   - advance <STEP>      move to another step
//   - appraise            request a price range
//   - pay                 start (or replay) the payment
//   - verify [reference]  confirm the payment
//   - photo <file>        upload a photo and attach it
//   - reset / seed        test hooks, when the server allows them
//   - exit | quit
//
// Every draft the CLI sees is also written to a local sqlite cache. When the
// server cannot be reached at startup the cached draft is shown instead and
// the prompt reports offline mode.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
