package serve

// clientScript is the browser-side event bridge. It mirrors the binary
// protocol in pkg/protocol: 4-byte frame header, uvarint lengths, UTF-8
// strings. Events bubble to the document, get matched to the nearest
// data-hid ancestor, and are forwarded as event frames; patch frames
// replace the mounted tree.
const clientScript = `(function () {
  "use strict";

  var FRAME_EVENT = 0x01;
  var FRAME_PATCH = 0x02;
  var FRAME_CONTROL = 0x03;
  var FRAME_ERROR = 0x04;

  var CONTROL_PING = 0x01;
  var CONTROL_PONG = 0x02;
  var CONTROL_CLOSE = 0x10;

  var EVENT_KINDS = { click: 1, input: 2, change: 3, keydown: 4, blur: 5, submit: 6 };

  var root = document.getElementById("canopy-root");
  var encoder = new TextEncoder();
  var decoder = new TextDecoder();
  var seq = 0;
  var ws = null;

  function Writer() {
    this.bytes = [];
  }
  Writer.prototype.byte = function (b) {
    this.bytes.push(b & 0xff);
  };
  Writer.prototype.uvarint = function (v) {
    while (v >= 0x80) {
      this.bytes.push((v & 0x7f) | 0x80);
      v = Math.floor(v / 128);
    }
    this.bytes.push(v);
  };
  Writer.prototype.string = function (s) {
    var data = encoder.encode(s);
    this.uvarint(data.length);
    for (var i = 0; i < data.length; i++) this.bytes.push(data[i]);
  };
  Writer.prototype.strings = function (list) {
    this.uvarint(list.length);
    for (var i = 0; i < list.length; i++) this.string(list[i]);
  };

  function Reader(view) {
    this.view = view;
    this.pos = 0;
  }
  Reader.prototype.byte = function () {
    return this.view[this.pos++];
  };
  Reader.prototype.uvarint = function () {
    var v = 0;
    var shift = 1;
    for (;;) {
      var b = this.view[this.pos++];
      v += (b & 0x7f) * shift;
      if ((b & 0x80) === 0) return v;
      shift *= 128;
    }
  };
  Reader.prototype.string = function () {
    var len = this.uvarint();
    var s = decoder.decode(this.view.subarray(this.pos, this.pos + len));
    this.pos += len;
    return s;
  };

  function frame(type, payload) {
    var out = new Uint8Array(4 + payload.length);
    out[0] = type;
    out[2] = payload.length >> 8;
    out[3] = payload.length & 0xff;
    out.set(payload, 4);
    return out;
  }

  function sendEvent(kind, hid, value, values) {
    if (!ws || ws.readyState !== WebSocket.OPEN) return;
    var w = new Writer();
    w.uvarint(++seq);
    w.byte(EVENT_KINDS[kind]);
    w.string(hid);
    w.string(value || "");
    w.strings(values || []);
    ws.send(frame(FRAME_EVENT, new Uint8Array(w.bytes)));
  }

  function sendControl(type, timestamp) {
    if (!ws || ws.readyState !== WebSocket.OPEN) return;
    var w = new Writer();
    w.byte(type);
    w.uvarint(timestamp || 0);
    ws.send(frame(FRAME_CONTROL, new Uint8Array(w.bytes)));
  }

  function selectedValues(el) {
    var out = [];
    for (var i = 0; i < el.options.length; i++) {
      if (el.options[i].selected) out.push(el.options[i].value);
    }
    return out;
  }

  function onDomEvent(e) {
    var kind = e.type;
    if (!(kind in EVENT_KINDS)) return;
    var target = e.target.closest("[data-hid]");
    if (!target) return;

    var value = "";
    var values = null;
    if (kind === "keydown") {
      value = e.key;
    } else if (target.tagName === "SELECT" && target.multiple) {
      values = selectedValues(target);
    } else if ("value" in target) {
      value = target.value;
    }
    sendEvent(kind, target.getAttribute("data-hid"), value, values);
  }

  function handleMessage(buf) {
    var view = new Uint8Array(buf);
    if (view.length < 4) return;
    var type = view[0];
    var payload = view.subarray(4);
    var r = new Reader(payload);

    if (type === FRAME_PATCH) {
      r.uvarint(); // seq
      var targetHid = r.string();
      var html = r.string();
      if (targetHid === "") {
        root.innerHTML = html;
      } else {
        var el = root.querySelector('[data-hid="' + targetHid + '"]');
        if (el) el.outerHTML = html;
      }
    } else if (type === FRAME_CONTROL) {
      var ct = r.byte();
      if (ct === CONTROL_PING) {
        sendControl(CONTROL_PONG, r.uvarint());
      } else if (ct === CONTROL_CLOSE) {
        ws.close();
      }
    } else if (type === FRAME_ERROR) {
      var code = r.uvarint();
      console.error("canopy: server error", code, r.string());
    }
  }

  function connect() {
    var scheme = location.protocol === "https:" ? "wss:" : "ws:";
    ws = new WebSocket(scheme + "//" + location.host + "/ws");
    ws.binaryType = "arraybuffer";
    ws.onmessage = function (e) { handleMessage(e.data); };
    ws.onclose = function () {
      setTimeout(connect, 1000);
    };
  }

  ["click", "input", "change", "keydown", "blur", "submit"].forEach(function (kind) {
    document.addEventListener(kind, onDomEvent, true);
  });

  connect();
})();
`
