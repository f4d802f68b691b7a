package input

// Button is a discrete push-button event
type Button uint8

const (
	Open          Button = iota // nothing pending
	Closed                      // reserved, never reported
	Pressed                     // reserved, never reported
	Held                        // down longer than HoldTimeMS, repeats while held
	Released                    // let go after Held
	Clicked                     // single click, reported once the double-click window closes
	DoubleClicked               // second click inside the window
)

func (b Button) String() string {
	switch b {
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	case Pressed:
		return "Pressed"
	case Held:
		return "Held"
	case Released:
		return "Released"
	case Clicked:
		return "Clicked"
	case DoubleClicked:
		return "DoubleClicked"
	default:
		return "Unknown"
	}
}

// Button timing, in milliseconds
const (
	ButtonIntervalMS = 10
	HoldTimeMS       = 1200
	DoubleClickMS    = 300
)

// buttonClassifier turns sampled switch levels into events.
// Tick context only.
type buttonClassifier struct {
	keyDownTicks     int
	doubleClickTicks int
}

// sample is called once per ButtonIntervalMS. It returns the event to
// report, or Open when nothing happened.
func (c *buttonClassifier) sample(down bool, current Button) Button {
	event := Open

	if down {
		c.keyDownTicks++
		if c.keyDownTicks > HoldTimeMS/ButtonIntervalMS {
			event = Held
		}
	} else {
		if c.keyDownTicks > 0 {
			switch {
			case current == Held:
				event = Released
				c.doubleClickTicks = 0
			case c.doubleClickTicks > 0:
				event = DoubleClicked
				c.doubleClickTicks = 0
			default:
				// Wait one window for a second click; +1 because this
				// sample counts the window down below
				c.doubleClickTicks = DoubleClickMS/ButtonIntervalMS + 1
			}
		}
		c.keyDownTicks = 0
	}

	if c.doubleClickTicks > 0 {
		c.doubleClickTicks--
		if c.doubleClickTicks == 0 {
			event = Clicked
		}
	}
	return event
}
