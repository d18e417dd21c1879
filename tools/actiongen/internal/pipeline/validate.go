package pipeline

import "fmt"

var validEvents = map[string]struct{}{
	"jump": {}, "jumpHigher": {}, "dodge": {}, "block": {},
	"attack": {}, "attackHeavier": {}, "hit": {}, "beHit": {},
}

var validMotions = map[string]struct{}{
	"any": {}, "freeStat": {}, "motionless": {}, "onFloor": {},
	"inAir": {}, "underWater": {}, "climbWall": {},
}

var validLogicKinds = map[string]struct{}{
	"animFinished": {}, "moveAfter": {}, "jumpAfter": {},
	"attackWhen": {}, "motionOnlyAllowed": {},
}

// validateCatalog rejects duplicate action names and any eventExit/
// logicExit/switchRelation reference that does not resolve within the same
// merged catalog, surfacing at build time the mistake spec.md otherwise
// accepts as a silent runtime stall.
func validateCatalog(entries []entryDoc) error {
	names := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("actiongen: %s: entry missing name", e.sourceFile)
		}
		if prior, dup := names[e.Name]; dup {
			return fmt.Errorf("actiongen: duplicate action name %q in %s (first seen in %s)", e.Name, e.sourceFile, prior)
		}
		names[e.Name] = e.sourceFile
	}

	resolveTarget := func(name string) error {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("actiongen: dangling reference to action %q", name)
		}
		return nil
	}

	for _, e := range entries {
		for target := range e.SwitchRelation {
			if err := resolveTarget(target); err != nil {
				return fmt.Errorf("action %q: %w", e.Name, err)
			}
		}
		for _, ev := range e.EventEnter {
			if err := validateMotionEvent(ev); err != nil {
				return fmt.Errorf("action %q: %w", e.Name, err)
			}
		}
		for _, exit := range e.EventExit {
			if err := resolveTarget(exit.Next); err != nil {
				return fmt.Errorf("action %q: %w", e.Name, err)
			}
			if err := validateMotionEvent(exit.motionEventDoc); err != nil {
				return fmt.Errorf("action %q: %w", e.Name, err)
			}
		}
		for _, logic := range e.LogicExit {
			if err := resolveTarget(logic.Next); err != nil {
				return fmt.Errorf("action %q: %w", e.Name, err)
			}
			if _, ok := validLogicKinds[logic.Kind]; !ok {
				return fmt.Errorf("action %q: unknown logic kind %q", e.Name, logic.Kind)
			}
			if logic.Motion != "" {
				if _, ok := validMotions[logic.Motion]; !ok {
					return fmt.Errorf("action %q: unknown motion mode %q", e.Name, logic.Motion)
				}
			}
		}
	}
	return nil
}

func validateMotionEvent(ev motionEventDoc) error {
	if _, ok := validEvents[ev.Event]; !ok {
		return fmt.Errorf("unknown event %q", ev.Event)
	}
	if ev.Motion != "" {
		if _, ok := validMotions[ev.Motion]; !ok {
			return fmt.Errorf("unknown motion mode %q", ev.Motion)
		}
	}
	return nil
}
