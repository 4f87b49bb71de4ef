package reveal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Faultbox/wavebg/internal/config"
)

type recordingSource struct {
	observed   map[*Element]bool
	unobserved []*Element
	handler    Handler
}

func newRecordingSource() *recordingSource {
	return &recordingSource{observed: make(map[*Element]bool)}
}

func (s *recordingSource) Observe(el *Element) { s.observed[el] = true }

func (s *recordingSource) Unobserve(el *Element) {
	delete(s.observed, el)
	s.unobserved = append(s.unobserved, el)
}

func (s *recordingSource) OnChange(h Handler) { s.handler = h }

func (s *recordingSource) fire(el *Element, ratio float64) {
	s.handler([]Entry{{Target: el, Ratio: ratio}})
}

func defaultOptions() Options {
	return OptionsFromConfig(config.Default().Reveal)
}

func TestControllerReveal(t *testing.T) {
	Convey("Given the default page attached to a visibility source", t, func() {
		page := DefaultPage()
		bars := page.QueryClass("progress-bar")
		progress := NewProgressAnimator(bars, "progress", 0, nil)
		ctrl := NewController(defaultOptions(), page, progress)
		src := newRecordingSource()

		var changes []string
		ctrl.OnChange(func(s *Element, revealed bool) {
			if revealed {
				changes = append(changes, "+"+s.ID)
			} else {
				changes = append(changes, "-"+s.ID)
			}
		})
		ctrl.Attach(src)

		Convey("home is revealed with no events delivered", func() {
			So(ctrl.Revealed("home"), ShouldBeTrue)
			So(page.Section("home").Class.Contains("is-visible"), ShouldBeTrue)
			So(changes, ShouldResemble, []string{"+home"})
		})

		Convey("home is not observed and every other section is", func() {
			So(src.observed[page.Section("home")], ShouldBeFalse)
			So(src.observed, ShouldHaveLength, len(page.Sections)-1)
		})

		Convey("other sections start hidden", func() {
			for _, id := range []string{"about", "skills", "projects", "contact"} {
				So(ctrl.Revealed(id), ShouldBeFalse)
			}
		})

		Convey("an entry below the threshold does not reveal", func() {
			src.fire(page.Section("about"), 0.29)
			So(ctrl.Revealed("about"), ShouldBeFalse)
		})

		Convey("an entry at 30% reveals the section", func() {
			about := page.Section("about")
			src.fire(about, 0.3)
			So(ctrl.Revealed("about"), ShouldBeTrue)

			Convey("and a later 0% entry leaves it revealed", func() {
				src.fire(about, 0)
				So(ctrl.Revealed("about"), ShouldBeTrue)
			})

			Convey("and revealing again is a no-op", func() {
				src.fire(about, 1)
				So(about.Class, ShouldResemble, ClassList{"is-visible"})
				So(changes, ShouldResemble, []string{"+home", "+about"})
			})
		})

		Convey("progress bars stay unset until skills is revealed", func() {
			src.fire(page.Section("about"), 1)
			for _, bar := range bars {
				So(bar.Style.HasWidth, ShouldBeFalse)
			}

			Convey("then each bar takes its data-progress width", func() {
				src.fire(page.Section("skills"), 0.5)
				So(ctrl.Revealed("skills"), ShouldBeTrue)

				graphics := bars[2]
				So(graphics.Data["progress"], ShouldEqual, "75")
				So(graphics.Style.Width, ShouldEqual, 75.0)
				So(graphics.Style.WidthCSS(), ShouldEqual, "75%")
				So(bars[0].Style.WidthCSS(), ShouldEqual, "90%")
			})
		})

		Convey("entries for unknown targets are ignored", func() {
			So(func() { ctrl.Handle([]Entry{{Target: nil, Ratio: 1}}) }, ShouldNotPanic)
		})
	})
}

func TestControllerRetrigger(t *testing.T) {
	Convey("Given retrigger enabled", t, func() {
		opts := defaultOptions()
		opts.Retrigger = true
		page := DefaultPage()
		ctrl := NewController(opts, page, nil)
		src := newRecordingSource()
		ctrl.Attach(src)

		about := page.Section("about")

		Convey("a section hides again when it drops below the threshold", func() {
			src.fire(about, 0.6)
			So(ctrl.Revealed("about"), ShouldBeTrue)
			src.fire(about, 0.1)
			So(ctrl.Revealed("about"), ShouldBeFalse)
			src.fire(about, 0.4)
			So(ctrl.Revealed("about"), ShouldBeTrue)
		})

		Convey("home is never un-revealed because it is not observed", func() {
			So(src.observed[page.Section("home")], ShouldBeFalse)
			So(ctrl.Revealed("home"), ShouldBeTrue)
		})
	})
}

func TestControllerUnobserveOnReveal(t *testing.T) {
	Convey("Given unobserve on reveal", t, func() {
		opts := defaultOptions()
		opts.UnobserveOnReveal = true
		page := DefaultPage()
		ctrl := NewController(opts, page, nil)
		src := newRecordingSource()
		ctrl.Attach(src)

		Convey("a revealed section is no longer watched", func() {
			projects := page.Section("projects")
			src.fire(projects, 0.9)
			So(src.observed[projects], ShouldBeFalse)
			So(src.unobserved, ShouldResemble, []*Element{projects})
		})

		Convey("a hidden section keeps being watched", func() {
			contact := page.Section("contact")
			src.fire(contact, 0.1)
			So(src.observed[contact], ShouldBeTrue)
		})
	})
}

func TestControllerWithScrollSource(t *testing.T) {
	Convey("Given the default page in a 720px viewport", t, func() {
		page := DefaultPage()
		opts := defaultOptions()
		bars := page.QueryClass("progress-bar")
		ctrl := NewController(opts, page, NewProgressAnimator(bars, "progress", 0, nil))
		src := NewScrollSource(opts.Threshold, 720, page.Height())
		ctrl.Attach(src)

		Convey("the first poll reveals nothing below the fold", func() {
			src.Poll()
			So(ctrl.Revealed("home"), ShouldBeTrue)
			So(ctrl.Revealed("about"), ShouldBeFalse)
		})

		Convey("scrolling to skills reveals it and fills the bars", func() {
			src.Poll()
			src.ScrollTo(page.Section("about").Top)
			src.Poll()
			So(ctrl.Revealed("about"), ShouldBeTrue)
			So(ctrl.Revealed("skills"), ShouldBeFalse)

			src.ScrollTo(page.Section("skills").Top)
			src.Poll()
			So(ctrl.Revealed("skills"), ShouldBeTrue)
			So(ctrl.Revealed("about"), ShouldBeTrue)
			for _, bar := range bars {
				So(bar.Style.HasWidth, ShouldBeTrue)
			}

			Convey("and scrolling back to the top keeps everything revealed", func() {
				src.ScrollTo(0)
				src.Poll()
				So(ctrl.Revealed("skills"), ShouldBeTrue)
				So(ctrl.Revealed("about"), ShouldBeTrue)
			})
		})
	})
}
