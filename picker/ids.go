package picker

import (
	"fmt"

	"github.com/google/uuid"
)

// IDs are the element identifiers of one picker instance, used to link
// labels to inputs. They are unique per Controller.
type IDs struct {
	Summary      string
	SummaryInput string
	Popover      string
	Instructions string
	HueInput     string
	HexInput     string
	RedInput     string
	GreenInput   string
	BlueInput    string
	Tabs         [2]string
	Swatches     []string
}

type idGenerator struct {
	token string
	n     int
}

func newIDGenerator() *idGenerator {
	return &idGenerator{token: uuid.NewString()[:8]}
}

func (g *idGenerator) next(prefix string) string {
	g.n++
	return fmt.Sprintf("color-picker-%s-%s-%d", prefix, g.token, g.n)
}

func newIDs(swatches int) IDs {
	g := newIDGenerator()
	ids := IDs{
		Summary:      g.next("summary"),
		SummaryInput: g.next("summary-input"),
		Popover:      g.next("selector"),
		Instructions: g.next("instructions"),
		HueInput:     g.next("input-range"),
		HexInput:     g.next("input-hex"),
		RedInput:     g.next("input-r"),
		GreenInput:   g.next("input-g"),
		BlueInput:    g.next("input-b"),
		Tabs:         [2]string{g.next("default"), g.next("custom")},
	}
	ids.Swatches = make([]string, swatches)
	for i := range ids.Swatches {
		ids.Swatches[i] = g.next("swatch")
	}
	return ids
}

// ChannelInput returns the input ID of ch.
func (ids IDs) ChannelInput(ch Channel) string {
	switch ch {
	case ChannelRed:
		return ids.RedInput
	case ChannelGreen:
		return ids.GreenInput
	case ChannelBlue:
		return ids.BlueInput
	}
	return ""
}
