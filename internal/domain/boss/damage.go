package boss

// Damage applies an incoming hit to the boss.
//
// The pipeline, in order:
//  1. Silently absorbed while inactive or inside post-hit i-frames.
//  2. Crocomire ignores the amount and is pushed toward the pit
//     instead; this path is independent of the Vulnerable flag.
//  3. Everything else requires Vulnerable, then loses HP, gains
//     i-frames and triggers a small camera shake.
//  4. Kraid's mouth slams shut on any surviving hit; Phantoon latches
//     rage on a surviving heavy hit; Golden Torizo catches a heavy hit
//     (HP refunded in full, death check skipped).
//  5. At zero HP the boss becomes invulnerable and is dispatched to
//     its type-specific death entry. For Mother Brain phases 0 and 1
//     that entry is a phase transition, not a death.
//
// Invulnerability is frame-granular, not call-granular: the i-frame
// timer is raised by the first accepted hit and only decremented once
// per Update, so a second hit in the same frame is blocked by the
// timer the first one set.
func (e *Encounter) Damage(amount int) {
	b := &e.boss

	if !b.Active {
		return
	}
	if b.InvulnTimer > 0 {
		return
	}

	// Crocomire: push mechanic instead of HP damage. The terminal
	// falling/death states refuse pushes; every other state accepts
	// them.
	if croc, ok := b.brain.(*crocomire); ok {
		if croc.state == crocFalling || croc.state == crocDeath {
			return
		}
		b.InvulnTimer = hitInvulnFrames
		e.shake(5, 2)
		croc.push(e)
		return
	}

	if !b.Vulnerable {
		return
	}

	b.HP -= amount
	b.InvulnTimer = hitInvulnFrames
	e.shake(5, 2)

	switch ai := b.brain.(type) {
	case *kraid:
		if b.HP > 0 {
			ai.closeMouth(e)
		}
	case *phantoon:
		if b.HP > 0 && amount >= heavyThreshold {
			ai.rage = true
		}
	case *goldenTorizo:
		if b.HP > 0 && amount >= heavyThreshold && !ai.catching() {
			// The shot never connected: refund the HP in the same
			// call and play the catch instead.
			b.HP += amount
			ai.beginCatch(e)
			return
		}
	}

	if b.HP <= 0 {
		b.HP = 0
		b.Vulnerable = false
		e.shake(30, 4)
		b.brain.enterDeath(e)
	}
}
