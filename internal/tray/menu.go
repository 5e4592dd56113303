package tray

// Action identifies a tray menu entry.
type Action string

const (
    ActionShow Action = "show"
    ActionHide Action = "hide"
    ActionQuit Action = "quit"
)

// Window is what the tray menu controls.
type Window interface {
    Show()
    Hide()
    Quit()
}

type item struct {
    action  Action
    title   string
    tooltip string
}

// a left click on the icon brings the window back
const iconClickAction = ActionShow

// menu order; a separator goes before Quit
var items = []item{
    {ActionShow, "Show window", "Bring the main window to front"},
    {ActionHide, "Hide window", "Hide the main window"},
    {ActionQuit, "Quit", "Exit the application"},
}

// Dispatch runs the window operation for a. Unknown actions are ignored.
func Dispatch(w Window, a Action) bool {
    if w == nil { return false }
    switch a {
    case ActionShow:
        w.Show()
    case ActionHide:
        w.Hide()
    case ActionQuit:
        w.Quit()
    default:
        return false
    }
    return true
}
