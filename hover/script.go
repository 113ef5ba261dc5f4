package hover

import "fmt"

// Script renders the browser-side mirror of the transition table. Tiles
// are <g class="day"> groups carrying data-* tooltip lines; the tooltip
// overlay is looked up by element id.
func Script(c Config, tooltipID string) string {
	return fmt.Sprintf(`(function () {
  var tip = document.getElementById(%q);
  if (!tip) { return; }
  var tiles = document.querySelectorAll("g.day");
  tiles.forEach(function (tile) {
    var rect = tile.querySelector("rect");
    var label = tile.querySelector("text.lbl");
    var hovered = false;
    function move(e) {
      tip.style.left = (e.pageX + %d) + "px";
      tip.style.top = (e.pageY + %d) + "px";
    }
    tile.addEventListener("pointerenter", function (e) {
      if (hovered) { return; }
      hovered = true;
      label.style.opacity = %q;
      rect.style.stroke = %q;
      var lines = [
        tile.dataset.season,
        tile.dataset.hours,
        tile.dataset.extra,
        tile.dataset.date,
      ].filter(Boolean);
      tip.textContent = "";
      lines.forEach(function (line) {
        var div = document.createElement("div");
        div.textContent = line;
        tip.appendChild(div);
      });
      tip.style.opacity = "1";
      move(e);
    });
    tile.addEventListener("pointermove", function (e) {
      if (!hovered) { return; }
      move(e);
    });
    tile.addEventListener("pointerleave", function () {
      if (!hovered) { return; }
      hovered = false;
      label.style.opacity = %q;
      rect.style.stroke = %q;
      tip.style.opacity = "0";
    });
  });
})();`,
		tooltipID,
		c.OffsetX, c.OffsetY,
		fmt.Sprintf("%g", c.LabelOpacityHovered), c.StrokeHighlight,
		fmt.Sprintf("%g", c.LabelOpacityIdle), c.StrokeDefault,
	)
}
