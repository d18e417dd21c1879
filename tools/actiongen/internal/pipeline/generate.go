package pipeline

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
)

var eventIdent = map[string]string{
	"jump": "action.JumpInstruction", "jumpHigher": "action.JumpHigherInstruction",
	"dodge": "action.DodgeInstruction", "block": "action.BlockInstruction",
	"attack": "action.AttackInstruction", "attackHeavier": "action.AttackHeavierInstruction",
	"hit": "action.HitSignal", "beHit": "action.BeHitSignal",
}

var motionIdent = map[string]string{
	"freeStat": "mode.FreeStat", "motionless": "mode.Motionless", "onFloor": "mode.OnFloor",
	"inAir": "mode.InAir", "underWater": "mode.UnderWater", "climbWall": "mode.ClimbWall",
}

var logicIdent = map[string]string{
	"animFinished": "action.AnimFinished", "moveAfter": "action.MoveAfter",
	"jumpAfter": "action.JumpAfter", "attackWhen": "action.AttackWhen",
	"motionOnlyAllowed": "action.MotionOnlyAllowed",
}

func motionEventsLiteral(ev motionEventDoc) string {
	if ev.Motion == "" || ev.Motion == "any" {
		return fmt.Sprintf("action.AllMotions(%s)...", eventIdent[ev.Event])
	}
	return fmt.Sprintf("{Event: %s, Motion: %s}", eventIdent[ev.Event], motionIdent[ev.Motion])
}

// generateSource renders entries as a Go source file declaring
// DefaultActions, a literal []*action.Definition ready to register into an
// action.Machine without a runtime JSON parse.
func generateSource(pkgName string, entries []entryDoc) ([]byte, error) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	buf.WriteString("import (\n\t\"charability/internal/action\"\n\t\"charability/internal/mode\"\n)\n\n")
	buf.WriteString("// DefaultActions is generated from the action catalog; do not edit by hand.\n")
	buf.WriteString("var DefaultActions = []*action.Definition{\n")

	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{\n\t\tName: %q,\n", e.Name)
		if e.Priority != 0 {
			fmt.Fprintf(&buf, "\t\tPriority: %d,\n", e.Priority)
		}
		if len(e.SwitchRelation) > 0 {
			buf.WriteString("\t\tSwitchRelation: map[string]bool{")
			writeSwitchRelation(&buf, e.SwitchRelation)
			buf.WriteString("},\n")
		}
		if len(e.EventEnter) > 0 {
			buf.WriteString("\t\tEventEnter: []action.MotionEvent{")
			for i, ev := range e.EventEnter {
				if i > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(&buf, "%s", motionEventsLiteral(ev))
			}
			buf.WriteString("},\n")
		}
		if len(e.EventExit) > 0 {
			buf.WriteString("\t\tEventExit: map[action.MotionEvent]string{\n")
			for _, exit := range e.EventExit {
				fmt.Fprintf(&buf, "\t\t\t%s: %q,\n", motionEventsLiteral(exit.motionEventDoc), exit.Next)
			}
			buf.WriteString("\t\t},\n")
		}
		if len(e.LogicExit) > 0 {
			buf.WriteString("\t\tLogicExit: []action.LogicTransition{\n")
			for _, logic := range e.LogicExit {
				motion := "mode.FreeStat"
				if logic.Motion != "" {
					motion = motionIdent[logic.Motion]
				}
				fmt.Fprintf(&buf, "\t\t\t{Logic: action.ExitLogic{Kind: %s, Anim: %q, After: %v, Motion: %s}, Next: %q},\n",
					logicIdent[logic.Kind], logic.Anim, logic.After, motion, logic.Next)
			}
			buf.WriteString("\t\t},\n")
		}
		fmt.Fprintf(&buf, "\t\tAnimFirst: %q,\n", e.AnimFirst)
		if len(e.AnimNext) > 0 {
			buf.WriteString("\t\tAnimNext: map[string]string{")
			writeStringMap(&buf, e.AnimNext)
			buf.WriteString("},\n")
		}
		if len(e.AnimPhysics) > 0 {
			buf.WriteString("\t\tAnimPhysics: map[string]action.PhyEff{\n")
			for _, anim := range sortedKeys(e.AnimPhysics) {
				p := e.AnimPhysics[anim]
				fmt.Fprintf(&buf, "\t\t\t%q: {XVelocity: %v, XAcceleration: %v, YVelocity: %v, YAcceleration: %v},\n",
					anim, p.XVelocity, p.XAcceleration, p.YVelocity, p.YAcceleration)
			}
			buf.WriteString("\t\t},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("actiongen: format generated source: %w", err)
	}
	return formatted, nil
}

func writeSwitchRelation(buf *bytes.Buffer, m map[string]bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q: %v", k, m[k])
	}
}

func writeStringMap(buf *bytes.Buffer, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q: %q", k, m[k])
	}
}

func sortedKeys(m map[string]phyEffDoc) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
