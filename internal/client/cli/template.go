package cli

const boardTemplate = `
=== Room board: {{ .PropertyID }} ===
{{- if .Stale }}
Offline: showing rooms cached at {{ .FetchedAt }}
{{- end }}
{{- if eq (len .Rooms) 0 }}
No rooms found.

Use 'add <number> <floor> [kind]' on the board to add the first room.
{{ else }}
ROOM   FLOOR  KIND      OCCUPANCY  CLEANING
{{- range .Rooms }}
{{ printf "%-6d %-6d %-9s %-10s %-12s" .Number .Floor .Kind .Occupancy .Cleaning }}
{{- if .Flagged }} [flagged]{{ end }}
{{- if .Saving }} (saving){{ end }}
{{- if .Notes }}  {{ .Notes }}{{ end }}
{{- end }}

{{ len .Rooms }} room(s), {{ .Vacant }} vacant, {{ .Dirty }} to clean
{{ end }}`

const historyTemplate = `
=== History of room {{ .RoomID }} ===
{{- if eq (len .Entries) 0 }}
No history recorded.
{{ else }}
{{- range .Entries }}
{{ .CreatedAt.Local.Format "2006-01-02 15:04:05" }}  {{ printf "%-8s" .Action }} by {{ .ActorID }}
{{- end }}
{{ end }}`

const boardHelpTemplate = `
Board commands:
  list                        Show the board
  occupy <room>               Mark room occupied
  vacate <room>               Mark room vacant
  dirty <room>                Room needs cleaning
  cleaning <room>             Cleaning in progress
  clean <room>                Room cleaned
  inspect <room>              Room inspected
  flag <room>                 Toggle the maintenance flag
  add <room> <floor> [kind]   Add a room (kind: standard, double, suite)
  delete <room>               Delete a room
  undo                        Undo the last add or delete
  wait                        Wait until pending changes reach the server
  dismiss                     Hide the error message
  refresh                     Reload the board from the server
  help                        Show this help
  quit                        Leave the board
`

const usageTemplate = `
GophHotel Client

Usage:
  gophotel [OPTIONS] COMMAND

Options:
  --version                    Show version information
  --server URL                 Server URL (default: http://localhost:8080, env GOPHOTEL_SERVER)
  --db PATH                    Path to local database (default: gophotel-client.db, env GOPHOTEL_DB)
  --metrics ADDR               Expose board metrics on ADDR (env GOPHOTEL_METRICS_ADDR)
  --log-level LEVEL            debug, info, warn or error (default: warn)

Commands:
  register                Register new staff account
  login                   Login to server
  logout                  Logout from server
  status                  Show authentication status
  rooms <property>        Print the room board of a property
  board <property>        Open the interactive room board
  history <room-id>       Show who created, deleted or restored a room
  help                    Show this help

Examples:
  gophotel register
  gophotel login
  gophotel rooms grand-budapest
  gophotel board grand-budapest
  gophotel --server https://pms.example.com board grand-budapest
`
