// SPDX-License-Identifier: Unlicense OR MIT

/*
Package health implements the hit point counter shared by the event
handlers of a user interface.

A State holds a single non-negative counter. Decrease saturates at zero
and Increase has no ceiling. Both are linearizable, so a State may be
shared by any number of goroutines without further locking.

A Controller binds a State to the fixed hit and heal amounts and returns
a Report for every event. Presenters render the Report's Text and
Message and never touch the State directly:

	ctrl, err := health.NewController(&health.ControllerConfig{
		State: health.NewState(10),
	})
	...
	r := ctrl.OnHit()
	valueLabel.Text, messageLabel.Text = r.Text(), r.Message()
*/
package health
